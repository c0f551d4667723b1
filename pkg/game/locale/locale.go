// Package locale installs the embedded message catalogues for gotext.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/leonelquinteros/gotext"
)

// Default is the language used when none is configured or the configured one
// has no catalogue
const Default = "en"

const domain = "default"

//go:embed po
var catalogues embed.FS

// Available lists the languages with an embedded catalogue
func Available() []string {
	entries, err := fs.ReadDir(catalogues, "po")
	if err != nil {
		return nil
	}
	var langs []string
	for _, e := range entries {
		if e.IsDir() {
			langs = append(langs, e.Name())
		}
	}
	sort.Strings(langs)
	return langs
}

// Init makes lang the active catalogue for gotext.Get.
// It returns the language actually installed.
func Init(lang string) (string, error) {
	if lang == "" {
		lang = Default
	}
	data, err := catalogues.ReadFile(path.Join("po", lang, domain+".po"))
	if err != nil {
		if lang == Default {
			return "", fmt.Errorf("read %s catalogue: %w", lang, err)
		}
		return Init(Default)
	}

	po := gotext.NewPo()
	po.Parse(data)

	l := gotext.NewLocale("", lang)
	l.AddTranslator(domain, po)
	gotext.SetStorage(l)
	return lang, nil
}
