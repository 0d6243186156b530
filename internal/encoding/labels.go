package encoding

import (
	"strings"

	"github.com/rohmanhakim/safeurl/internal/infra"
)

// Canonical encoding names from the WHATWG Encoding standard.
const (
	UTF8        = "utf-8"
	UTF16BE     = "utf-16be"
	UTF16LE     = "utf-16le"
	Replacement = "replacement"
)

// labelEncodings maps every label defined by the Encoding standard to
// its canonical encoding name. Labels are matched after lowercasing
// and trimming ASCII whitespace.
var labelEncodings = map[string]string{}

func addLabels(name string, labels ...string) {
	for _, label := range labels {
		labelEncodings[label] = name
	}
}

func init() {
	addLabels(UTF8,
		"unicode-1-1-utf-8", "unicode11utf8", "unicode20utf8",
		"utf-8", "utf8", "x-unicode20utf8")
	addLabels("ibm866", "866", "cp866", "csibm866", "ibm866")
	addLabels("iso-8859-2",
		"csisolatin2", "iso-8859-2", "iso-ir-101", "iso8859-2",
		"iso88592", "iso_8859-2", "iso_8859-2:1987", "l2", "latin2")
	addLabels("iso-8859-3",
		"csisolatin3", "iso-8859-3", "iso-ir-109", "iso8859-3",
		"iso88593", "iso_8859-3", "iso_8859-3:1988", "l3", "latin3")
	addLabels("iso-8859-4",
		"csisolatin4", "iso-8859-4", "iso-ir-110", "iso8859-4",
		"iso88594", "iso_8859-4", "iso_8859-4:1988", "l4", "latin4")
	addLabels("iso-8859-5",
		"csisolatincyrillic", "cyrillic", "iso-8859-5", "iso-ir-144",
		"iso8859-5", "iso88595", "iso_8859-5", "iso_8859-5:1988")
	addLabels("iso-8859-6",
		"arabic", "asmo-708", "csiso88596e", "csiso88596i",
		"csisolatinarabic", "ecma-114", "iso-8859-6", "iso-8859-6-e",
		"iso-8859-6-i", "iso-ir-127", "iso8859-6", "iso88596",
		"iso_8859-6", "iso_8859-6:1987")
	addLabels("iso-8859-7",
		"csisolatingreek", "ecma-118", "elot_928", "greek", "greek8",
		"iso-8859-7", "iso-ir-126", "iso8859-7", "iso88597",
		"iso_8859-7", "iso_8859-7:1987", "sun_eu_greek")
	addLabels("iso-8859-8",
		"csiso88598e", "csisolatinhebrew", "hebrew", "iso-8859-8",
		"iso-8859-8-e", "iso-ir-138", "iso8859-8", "iso88598",
		"iso_8859-8", "iso_8859-8:1988", "visual")
	addLabels("iso-8859-8-i", "csiso88598i", "iso-8859-8-i", "logical")
	addLabels("iso-8859-10",
		"csisolatin6", "iso-8859-10", "iso-ir-157", "iso8859-10",
		"iso885910", "l6", "latin6")
	addLabels("iso-8859-13", "iso-8859-13", "iso8859-13", "iso885913")
	addLabels("iso-8859-14", "iso-8859-14", "iso8859-14", "iso885914")
	addLabels("iso-8859-15",
		"csisolatin9", "iso-8859-15", "iso8859-15", "iso885915",
		"iso_8859-15", "l9")
	addLabels("iso-8859-16", "iso-8859-16")
	addLabels("koi8-r", "cskoi8r", "koi", "koi8", "koi8-r", "koi8_r")
	addLabels("koi8-u", "koi8-ru", "koi8-u")
	addLabels("macintosh", "csmacintosh", "mac", "macintosh", "x-mac-roman")
	addLabels("windows-874",
		"dos-874", "iso-8859-11", "iso8859-11", "iso885911",
		"tis-620", "windows-874")
	addLabels("windows-1250", "cp1250", "windows-1250", "x-cp1250")
	addLabels("windows-1251", "cp1251", "windows-1251", "x-cp1251")
	addLabels("windows-1252",
		"ansi_x3.4-1968", "ascii", "cp1252", "cp819", "csisolatin1",
		"ibm819", "iso-8859-1", "iso-ir-100", "iso8859-1", "iso88591",
		"iso_8859-1", "iso_8859-1:1987", "l1", "latin1", "us-ascii",
		"windows-1252", "x-cp1252")
	addLabels("windows-1253", "cp1253", "windows-1253", "x-cp1253")
	addLabels("windows-1254",
		"cp1254", "csisolatin5", "iso-8859-9", "iso-ir-148",
		"iso8859-9", "iso88599", "iso_8859-9", "iso_8859-9:1989",
		"l5", "latin5", "windows-1254", "x-cp1254")
	addLabels("windows-1255", "cp1255", "windows-1255", "x-cp1255")
	addLabels("windows-1256", "cp1256", "windows-1256", "x-cp1256")
	addLabels("windows-1257", "cp1257", "windows-1257", "x-cp1257")
	addLabels("windows-1258", "cp1258", "windows-1258", "x-cp1258")
	addLabels("x-mac-cyrillic", "x-mac-cyrillic", "x-mac-ukrainian")
	addLabels("gbk",
		"chinese", "csgb2312", "csiso58gb231280", "gb2312", "gb_2312",
		"gb_2312-80", "gbk", "iso-ir-58", "x-gbk")
	addLabels("gb18030", "gb18030")
	addLabels("big5", "big5", "big5-hkscs", "cn-big5", "csbig5", "x-x-big5")
	addLabels("euc-jp", "cseucpkdfmtjapanese", "euc-jp", "x-euc-jp")
	addLabels("iso-2022-jp", "csiso2022jp", "iso-2022-jp")
	addLabels("shift_jis",
		"csshiftjis", "ms932", "ms_kanji", "shift-jis", "shift_jis",
		"sjis", "windows-31j", "x-sjis")
	addLabels("euc-kr",
		"cseuckr", "csksc56011987", "euc-kr", "iso-ir-149", "korean",
		"ks_c_5601-1987", "ks_c_5601-1989", "ksc5601", "ksc_5601",
		"windows-949")
	addLabels(Replacement,
		"csiso2022kr", "hz-gb-2312", "iso-2022-cn", "iso-2022-cn-ext",
		"iso-2022-kr", "replacement")
	addLabels(UTF16BE, "unicodefffe", "utf-16be")
	addLabels(UTF16LE,
		"csunicode", "iso-10646-ucs-2", "ucs-2", "unicode",
		"unicodefeff", "utf-16", "utf-16le")
	addLabels("x-user-defined", "x-user-defined")
}

func trimLabel(label string) string {
	return strings.TrimFunc(strings.ToLower(label), infra.IsASCIIWhitespace)
}

// Lookup resolves an encoding label to its canonical encoding name.
func Lookup(label string) (string, error) {
	name, ok := labelEncodings[trimLabel(label)]
	if !ok {
		return "", &LabelError{Label: label}
	}
	return name, nil
}

// OutputEncoding resolves label and substitutes UTF-8 for the
// encodings that may never be produced as output (replacement and the
// UTF-16 variants).
func OutputEncoding(label string) (string, error) {
	name, err := Lookup(label)
	if err != nil {
		return "", err
	}
	switch name {
	case Replacement, UTF16BE, UTF16LE:
		return UTF8, nil
	}
	return name, nil
}
