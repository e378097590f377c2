package providers

import "github.com/mrlokans/mybible/internal/bible"

// wldeh uses lowercase English names without spaces.
var wldehBookNames = map[string]string{
	"GEN": "genesis", "EXO": "exodus", "LEV": "leviticus", "NUM": "numbers",
	"DEU": "deuteronomy", "JOS": "joshua", "JDG": "judges", "RUT": "ruth",
	"1SA": "1samuel", "2SA": "2samuel", "1KI": "1kings", "2KI": "2kings",
	"1CH": "1chronicles", "2CH": "2chronicles", "EZR": "ezra", "NEH": "nehemiah",
	"EST": "esther", "JOB": "job", "PSA": "psalms", "PRO": "proverbs",
	"ECC": "ecclesiastes", "SNG": "songofsolomon", "ISA": "isaiah", "JER": "jeremiah",
	"LAM": "lamentations", "EZK": "ezekiel", "DAN": "daniel", "HOS": "hosea",
	"JOL": "joel", "AMO": "amos", "OBA": "obadiah", "JON": "jonah",
	"MIC": "micah", "NAM": "nahum", "HAB": "habakkuk", "ZEP": "zephaniah",
	"HAG": "haggai", "ZEC": "zechariah", "MAL": "malachi",

	"MAT": "matthew", "MRK": "mark", "LUK": "luke", "JHN": "john",
	"ACT": "acts", "ROM": "romans", "1CO": "1corinthians", "2CO": "2corinthians",
	"GAL": "galatians", "EPH": "ephesians", "PHP": "philippians", "COL": "colossians",
	"1TH": "1thessalonians", "2TH": "2thessalonians", "1TI": "1timothy", "2TI": "2timothy",
	"TIT": "titus", "PHM": "philemon", "HEB": "hebrews", "JAS": "james",
	"1PE": "1peter", "2PE": "2peter", "1JN": "1john", "2JN": "2john",
	"3JN": "3john", "JUD": "jude", "REV": "revelation",
}

var wldehVersionPaths = map[string]string{
	"kjv": "en-kjv",
	"asv": "en-asv",
	"web": "en-web",
	"bsb": "en-bsb",
	"lsv": "en-lsv",
	"fbv": "en-fbv",
}

var helloaoTranslations = map[string]string{
	"krv": "kor_old",
}

func wldehBookName(book string) (string, error) {
	name, ok := wldehBookNames[book]
	if !ok {
		return "", unmappedError("wldeh", "book", book)
	}
	return name, nil
}

func wldehVersionPath(version string) (string, error) {
	path, ok := wldehVersionPaths[version]
	if !ok {
		return "", unmappedError("wldeh", "version", version)
	}
	return path, nil
}

// helloao uses the same three-character book ids as the registry.
func helloaoBookID(book string) (string, error) {
	if _, ok := bible.BookByID(book); !ok {
		return "", unmappedError("helloao", "book", book)
	}
	return book, nil
}

func helloaoTranslation(version string) (string, error) {
	id, ok := helloaoTranslations[version]
	if !ok {
		return "", unmappedError("helloao", "version", version)
	}
	return id, nil
}
