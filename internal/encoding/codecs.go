package encoding

import (
	"fmt"
	"sync"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// codecFor maps a canonical encoding name to its codec. UTF-8 has no
// entry; callers treat it as the identity transform.
func codecFor(name string) (encoding.Encoding, error) {
	switch name {
	case "ibm866":
		return charmap.CodePage866, nil
	case "iso-8859-2":
		return charmap.ISO8859_2, nil
	case "iso-8859-3":
		return charmap.ISO8859_3, nil
	case "iso-8859-4":
		return charmap.ISO8859_4, nil
	case "iso-8859-5":
		return charmap.ISO8859_5, nil
	case "iso-8859-6":
		return charmap.ISO8859_6, nil
	case "iso-8859-7":
		return charmap.ISO8859_7, nil
	case "iso-8859-8", "iso-8859-8-i":
		return charmap.ISO8859_8, nil
	case "iso-8859-10":
		return charmap.ISO8859_10, nil
	case "iso-8859-13":
		return charmap.ISO8859_13, nil
	case "iso-8859-14":
		return charmap.ISO8859_14, nil
	case "iso-8859-15":
		return charmap.ISO8859_15, nil
	case "iso-8859-16":
		return charmap.ISO8859_16, nil
	case "koi8-r":
		return charmap.KOI8R, nil
	case "koi8-u":
		return charmap.KOI8U, nil
	case "macintosh":
		return charmap.Macintosh, nil
	case "windows-874":
		return charmap.Windows874, nil
	case "windows-1250":
		return charmap.Windows1250, nil
	case "windows-1251":
		return charmap.Windows1251, nil
	case "windows-1252":
		return charmap.Windows1252, nil
	case "windows-1253":
		return charmap.Windows1253, nil
	case "windows-1254":
		return charmap.Windows1254, nil
	case "windows-1255":
		return charmap.Windows1255, nil
	case "windows-1256":
		return charmap.Windows1256, nil
	case "windows-1257":
		return charmap.Windows1257, nil
	case "windows-1258":
		return charmap.Windows1258, nil
	case "x-mac-cyrillic":
		return charmap.MacintoshCyrillic, nil
	case "gbk":
		return simplifiedchinese.GBK, nil
	case "gb18030":
		return simplifiedchinese.GB18030, nil
	case "big5":
		return traditionalchinese.Big5, nil
	case "euc-jp":
		return japanese.EUCJP, nil
	case "iso-2022-jp":
		return japanese.ISO2022JP, nil
	case "shift_jis":
		return japanese.ShiftJIS, nil
	case "euc-kr":
		return korean.EUCKR, nil
	case Replacement:
		return encoding.Replacement, nil
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case "x-user-defined":
		return charmap.XUserDefined, nil
	}
	return nil, fmt.Errorf("no codec for encoding %q", name)
}

// codecCache memoizes codec lookups. Correctness never depends on it:
// a miss falls through to codecFor. The cache is bounded and safe for
// concurrent readers.
type codecCache struct {
	mu      sync.RWMutex
	entries map[string]encoding.Encoding
	limit   int
}

var codecs = &codecCache{
	entries: make(map[string]encoding.Encoding),
	limit:   64,
}

func (c *codecCache) get(name string) (encoding.Encoding, error) {
	c.mu.RLock()
	enc, ok := c.entries[name]
	c.mu.RUnlock()
	if ok {
		return enc, nil
	}
	enc, err := codecFor(name)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if len(c.entries) < c.limit {
		c.entries[name] = enc
	}
	c.mu.Unlock()
	return enc, nil
}
