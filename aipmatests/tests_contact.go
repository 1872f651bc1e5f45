package aipmatests

import (
	"github.com/mateomaralcantara/aipma/framework"
)

const contactPath = "/contacto"

func DoContactTest(t *T) framework.Verdict {
	body, err := t.PostObject(contactPath, contactFixture())
	if err != nil {
		return framework.FailWith(err)
	}
	if err := requireSuccessWith(body, "message"); err != nil {
		return framework.FailWith(err)
	}
	return framework.Pass("Contact form submission successful",
		"Response: "+displayString(body.GetByKey("message")))
}
