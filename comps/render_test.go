package comps_test

import (
	"strings"
	"testing"

	"github.com/pulsarjs/pulsar/comps"
	"github.com/pulsarjs/pulsar/mockdom"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestRenderIntoSetsInnerHTML(t *testing.T) {
	doc := mockdom.NewMockDocument()
	el := comps.RenderInto(doc, "div", h.Span(g.Text("hello")))

	if got := el.InnerHTML(); !strings.Contains(got, "hello") {
		t.Fatalf("InnerHTML() = %q, want it to contain %q", got, "hello")
	}
}
