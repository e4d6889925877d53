package strand

import "github.com/rivo/uniseg"

// GraphemeLen returns the number of extended grapheme clusters in the
// content. Like Text, it requires valid UTF8- or ASCII-tagged content and
// fails with ErrEncoding otherwise. GraphemeLen can be smaller than CharLen
// when codepoints combine, e.g. "🇩🇪" or "é".
func (s *String) GraphemeLen() (int, error) {
	t, err := s.Text()
	if err != nil {
		return 0, err
	}
	return uniseg.GraphemeClusterCount(t), nil
}
