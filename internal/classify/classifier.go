// Package classify decides which Danbooru tags denote character entities.
//
// Character tags are conventionally disambiguated with a parenthetical
// qualifier (rem_(re:zero)), but the same syntax is reused for medium,
// style, series and meta tags, and a handful of very popular characters
// carry no parenthetical at all. The classifier resolves this with rule
// data injected at construction time: a VIP allow-list, a suffix deny-list
// and a specific deny-list layered over the generic parenthetical rule.
package classify

import (
	"regexp"
	"strings"

	"github.com/ppiankov/tagtrend/internal/model"
)

// disambiguator matches a well-formed name_(qualifier) segment anywhere in
// a normalized tag.
var disambiguator = regexp.MustCompile(`_\([^()]+\)`)

// Classifier answers whether a tag names a character entity. It is
// deterministic, side-effect free and safe for concurrent use.
type Classifier struct {
	vips        map[string]struct{}
	banTags     map[string]struct{}
	banSuffixes []string
}

// New builds a Classifier from rule data. List entries are normalized the
// same way query tags are, so config-file casing does not matter.
func New(rules model.ClassifierConfig) *Classifier {
	c := &Classifier{
		vips:        make(map[string]struct{}, len(rules.VIPs)),
		banTags:     make(map[string]struct{}, len(rules.BanTags)),
		banSuffixes: make([]string, 0, len(rules.BanSuffixes)),
	}
	for _, v := range rules.VIPs {
		c.vips[model.NormalizeTag(v)] = struct{}{}
	}
	for _, b := range rules.BanTags {
		c.banTags[model.NormalizeTag(b)] = struct{}{}
	}
	for _, s := range rules.BanSuffixes {
		c.banSuffixes = append(c.banSuffixes, model.NormalizeTag(s))
	}
	return c
}

// IsCharacter reports whether the tag denotes a character entity.
//
// Decision order, first match wins:
//  1. VIP allow-list entry -> true
//  2. deny-listed suffix -> false
//  3. specifically deny-listed tag -> false
//  4. contains a name_(qualifier) disambiguator -> true
//  5. otherwise -> false
func (c *Classifier) IsCharacter(tag string) bool {
	t := model.NormalizeTag(tag)
	if t == "" {
		return false
	}
	if _, ok := c.vips[t]; ok {
		return true
	}
	for _, suffix := range c.banSuffixes {
		if strings.HasSuffix(t, suffix) {
			return false
		}
	}
	if _, ok := c.banTags[t]; ok {
		return false
	}
	return disambiguator.MatchString(t)
}
