// Package catalog is the bounded pool of art the mint command draws from.
// Every piece fits comfortably in one payload.
package catalog

import (
	"fmt"
	"math/rand"

	"github.com/sahilm/fuzzy"
)

type Category struct {
	Name  string
	Items []string
}

var categories = []Category{
	{"classic", []string{
		"(^_^)", "(•‿•)", "(｡◕‿◕｡)", "(ᵔᴥᵔ)", "(>‿<)",
		"(✿◠‿◠)", "(ʘ‿ʘ)", "(｡♥‿♥｡)", "(✧ω✧)", "¯\\_(ツ)_/¯",
	}},
	{"trolls", []string{
		"(ಠ_ಠ)", "(¬‿¬)", "(ง'̀-'́)ง", "ᕦ(ò_óˇ)ᕤ", "(っ◞‸◟c)",
		"(ಠ‿ಠ)", "(ノಠ益ಠ)ノ彡┻━┻", "(つ▀¯▀)つ", "(ง ° ͜ ʖ °)ง", "(ᵔ ͜ʖᵔ)",
	}},
	{"animals", []string{
		"(=^･ω･^=)", "(ʕ•ᴥ•ʔ)", "(❍ᴥ❍ʋ)", "(•ㅅ•)", "(•ө•)♡",
		"／(=ﾟ‥ﾟ)＼", "(>ᴗ•)", "(ꈍᴗꈍ)", "(=^‥^=)", "(•‿•)ﾉ",
	}},
	{"battle", []string{
		"(ง •̀_•́)ง✧", "ᕙ(⇀‸↼‶)ᕗ", "ʕง•ᴥ•ʔง", "ʕ •̀ o •́ ʔ", "ᕦ╏ ͡ ͜ʖ ͡ ╏ᕤ",
		"(งツ)ว", "(ง°ل͜°)ง", "(ง ⚆ᗜ⚆)ง", "(ง⌐□ل͜□)ง", "(ง. •̀_•́.)ง",
	}},
}

// Categories returns a copy of the pool; callers can't change it.
func Categories() []Category {
	result := make([]Category, len(categories))
	for i, c := range categories {
		result[i] = Category{
			Name:  c.Name,
			Items: append([]string(nil), c.Items...),
		}
	}
	return result
}

// All returns every piece, category by category.
func All() []string {
	result := []string{}
	for _, c := range categories {
		result = append(result, c.Items...)
	}
	return result
}

func Random(rng *rand.Rand) string {
	all := All()
	return all[rng.Intn(len(all))]
}

type categoryNames []Category

func (c categoryNames) String(i int) string { return c[i].Name }
func (c categoryNames) Len() int            { return len(c) }

// FindCategory fuzzy matches query against the category names, so "anim"
// or "btl" work.
func FindCategory(query string) (Category, error) {
	matches := fuzzy.FindFrom(query, categoryNames(categories))
	if len(matches) == 0 {
		return Category{}, fmt.Errorf("no art category matches %q", query)
	}
	return Categories()[matches[0].Index], nil
}

// RandomFrom picks a piece from the category best matching query.
func RandomFrom(query string, rng *rand.Rand) (string, error) {
	c, err := FindCategory(query)
	if err != nil {
		return "", err
	}
	return c.Items[rng.Intn(len(c.Items))], nil
}
