package bible

// SourceAPI names an upstream chapter provider.
type SourceAPI string

const (
	SourceWldeh   SourceAPI = "wldeh"
	SourceHelloao SourceAPI = "helloao"
)

// Alternate returns the provider that is not the given one.
func (s SourceAPI) Alternate() SourceAPI {
	if s == SourceWldeh {
		return SourceHelloao
	}
	return SourceWldeh
}

type Language string

const (
	LanguageKorean  Language = "ko"
	LanguageEnglish Language = "en"
)

// Version is a translation bound to exactly one primary provider.
type Version struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ShortName string    `json:"shortName"`
	Language  Language  `json:"language"`
	SourceAPI SourceAPI `json:"sourceApi"`
}

var versions = []Version{
	{ID: "krv", Name: "개역한글", ShortName: "개역한글", Language: LanguageKorean, SourceAPI: SourceHelloao},
	{ID: "kjv", Name: "King James Version", ShortName: "KJV", Language: LanguageEnglish, SourceAPI: SourceWldeh},
	{ID: "bsb", Name: "Berean Standard Bible", ShortName: "BSB", Language: LanguageEnglish, SourceAPI: SourceWldeh},
	{ID: "web", Name: "World English Bible", ShortName: "WEB", Language: LanguageEnglish, SourceAPI: SourceWldeh},
	{ID: "asv", Name: "American Standard Version", ShortName: "ASV", Language: LanguageEnglish, SourceAPI: SourceWldeh},
	{ID: "lsv", Name: "Literal Standard Version", ShortName: "LSV", Language: LanguageEnglish, SourceAPI: SourceWldeh},
	{ID: "fbv", Name: "Free Bible Version", ShortName: "FBV", Language: LanguageEnglish, SourceAPI: SourceWldeh},
}

// DefaultVersion is the version used when a client has not chosen one.
const DefaultVersion = "krv"

func Versions() []Version {
	out := make([]Version, len(versions))
	copy(out, versions)
	return out
}

func VersionByID(id string) (Version, bool) {
	for _, v := range versions {
		if v.ID == id {
			return v, true
		}
	}
	return Version{}, false
}

func VersionsByLanguage(lang Language) []Version {
	var out []Version
	for _, v := range versions {
		if v.Language == lang {
			out = append(out, v)
		}
	}
	return out
}
