package html

import "testing"

func TestStripHTML_RemovesTags(t *testing.T) {
	input := "<p>Hello <b>world</b></p>"

	got := StripHTML(input)

	if got != "Hello world" {
		t.Errorf("StripHTML = %q, want %q", got, "Hello world")
	}
}

func TestStripHTML_DropsScriptAndStyle(t *testing.T) {
	input := `<div>visible<script>var hidden = 1;</script><style>.x{color:red}</style> text</div>`

	got := StripHTML(input)

	if got != "visible text" {
		t.Errorf("StripHTML = %q, want %q", got, "visible text")
	}
}

func TestStripHTML_DecodesEntities(t *testing.T) {
	input := "<p>Tom &amp; Jerry &ndash; &quot;friends&quot;</p>"

	got := StripHTML(input)

	want := "Tom & Jerry – \"friends\""
	if got != want {
		t.Errorf("StripHTML = %q, want %q", got, want)
	}
}

func TestStripHTML_PlainTextPassthrough(t *testing.T) {
	input := "no markup   here"

	got := StripHTML(input)

	if got != "no markup here" {
		t.Errorf("StripHTML = %q, want %q", got, "no markup here")
	}
}

func TestStripHTML_CollapsesWhitespace(t *testing.T) {
	input := "<p>line one</p>\n\n\t<p>line   two</p>"

	got := StripHTML(input)

	if got != "line one line two" {
		t.Errorf("StripHTML = %q, want %q", got, "line one line two")
	}
}

func TestStripHTML_EmptyInput(t *testing.T) {
	if got := StripHTML(""); got != "" {
		t.Errorf("StripHTML(\"\") = %q, want empty", got)
	}
}
