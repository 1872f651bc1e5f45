package aipmatests

import (
	"context"

	"github.com/mateomaralcantara/aipma/framework"
)

type testCase struct {
	name   string
	action func(*T) framework.Verdict
}

func allTestCases() []testCase {
	cases := []testCase{
		{"API Info Endpoint", DoAPIInfoTest},
	}
	for _, kind := range allResourceKinds {
		cases = append(cases, testCase{"GET " + kind.title, DoListTest(kind)})
	}
	cases = append(cases, testCase{"POST Contacto", DoContactTest})
	for _, kind := range allResourceKinds {
		cases = append(cases, testCase{"POST " + kind.title, DoCreateTest(kind)})
	}
	return append(cases,
		testCase{"Error Handling - Invalid Endpoint", DoInvalidEndpointTest},
		testCase{"Error Handling - Malformed Request", DoMalformedRequestTest},
	)
}

// AllTestNames returns the name of every test case in the order the suite runs them.
func AllTestNames() []string {
	var names []string
	for _, tc := range allTestCases() {
		names = append(names, tc.name)
	}
	return names
}

// RunTestSuite runs every test case that passes the filter, in order, recording one outcome
// for each, and returns the summary of everything recorded.
func RunTestSuite(
	ctx context.Context,
	harness *framework.TestHarness,
	recorder *framework.Recorder,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Summary {
	runner := framework.NewRunner(ctx, recorder, filter, testLogger)
	for _, tc := range allTestCases() {
		action := tc.action
		runner.Run(tc.name, func(c *framework.Context) framework.Verdict {
			return action(newTestScope(c, harness))
		})
	}
	return recorder.Summary()
}
