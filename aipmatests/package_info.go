// Package aipmatests contains the AIPMA API contract tests themselves and their supporting API.
//
// Harness infrastructure that is not specific to the AIPMA domain, such as running test cases,
// recording outcomes and sending HTTP requests, is in the lower-level framework package.
package aipmatests
