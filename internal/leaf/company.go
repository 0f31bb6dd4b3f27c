package leaf

import (
	"github.com/goliatone/go-forgery/pkg/locale"
	"github.com/goliatone/go-forgery/pkg/rng"
)

func Company(src *rng.Source, loc locale.Locale) string {
	t := forLocale(loc)
	return pick(src, t.companyPrefixes) + " " + pick(src, t.companySuffixes)
}

func Job(src *rng.Source) string {
	return pick(src, jobTitles)
}

func CatchPhrase(src *rng.Source) string {
	return pick(src, catchAdjectives) + " " + pick(src, catchNouns)
}
