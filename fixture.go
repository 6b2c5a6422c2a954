package readview

// DemoTitlePrefix marks articles created through the deliberate demo
// path. FallbackTitlePrefix marks articles substituted because the
// real target could not be fetched; the two are kept distinct so a
// degraded response is recognizable.
const (
	DemoTitlePrefix     = "Demo: "
	FallbackTitlePrefix = "[offline] "
)

// DemoFixture returns the built-in fixture document used for demo URLs
// and as the graceful-degrade substitute when a fetch fails. The
// content deliberately includes preformatted text and chapter-marker
// paragraphs so the reading view's segmentation is visible.
func DemoFixture() *ExtractResult {
	return &ExtractResult{
		Title:       demoTitle,
		ContentHTML: demoContent,
	}
}

const demoTitle = "The Art of Reading"

const demoContent = `<h1>The Art of Reading</h1>
<p>This is a built-in sample document. Submit any public article URL
to see its content rendered here instead.</p>
<p>Chapter 1: On Attention</p>
<p>Reading well is mostly a matter of attention. A page asks for
nothing except that you stay with it, line after line, until the
shape of the argument comes into view.</p>
<p>Chapter 2: On Typography</p>
<p>Comfortable type is invisible type. Adjust the measure and the
leading until you stop noticing either.</p>
<pre>A Note on Plain Text
Some texts arrive as preformatted lines,
broken where a typewriter margin once stood.

The reading view joins those lines back into
paragraphs, keeping only the blank-line breaks
that mark real boundaries.</pre>
<p>That is all the demo has to show. The rest is up to the pages you
bring to it.</p>`
