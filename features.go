package fontparts

import "fmt"

// Features holds the font's OpenType feature definitions as .fea
// source text. The text is stored verbatim; compiling it is an
// environment concern.
type Features struct {
	font *Font

	text string
}

// Font returns the features' parent font, or nil.
func (f *Features) Font() *Font { return f.font }

// Text returns the feature source text.
func (f *Features) Text() string { return f.text }

// SetText sets the feature source text.
func (f *Features) SetText(value string) { f.text = value }

func (f *Features) String() string {
	return fmt.Sprintf("<Features %d bytes>", len(f.text))
}
