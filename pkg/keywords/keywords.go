// Package keywords derives story keywords from article text when a page
// carries no keywords meta tag.
package keywords

import (
	"sort"
	"strings"
	"unicode"
)

// stopwords are ignored when counting. Web chrome words such as "click"
// and "homepage" are included.
var stopwords = wordSet(`
	a about above across after afterwards again against ain't all almost
	alone along already also although always am among amongst amount an and
	another any anyhow anyone anything anyway anywhere are aren't around as
	at back be became because become becomes becoming been before beforehand
	behind being below beside besides between beyond both but button by can
	can't cannot click clickable clicked clicking could couldn't did didn't
	do does doesn't doing don't done down during each either else elsewhere
	enough entirely especially etc even ever every everyone everything
	everywhere few for former formerly from further had hadn't has hasn't
	have haven't having he he'd he'll he's hence her here here's hereafter
	hereby herein hereupon hers herself him himself his home homepage how
	however i i'd i'll i'm i've if in indeed into is isn't it it'll it's its
	itself just keep last latter latterly least less let let's like likely
	link load loaded loading loads made make many may maybe me meanwhile
	menu might mine more moreover most mostly much must mustn't my myself
	neither never nevertheless next no nobody none noone nor not nothing now
	nowhere of off often on once one only onto or other others otherwise our
	ours ourselves out over own page pages part per perhaps please put
	rather re redirect redirected redirecting same search searched searching
	see seem seemed seeming seems several shan't she she'd she'll she's
	should shouldn't since site so some somehow someone something sometime
	sometimes somewhere still such take than that that'll that's the their
	theirs them themselves then thence there there's thereafter thereby
	therefore therein thereupon these they they'd they'll they're they've
	this those through throughout thru thus to together too toward towards
	under until up upon us use very via was wasn't we we'd we'll we're we've
	website well were weren't what what's whatever when when's whence
	whenever where where's whereafter whereas whereby wherein whereupon
	wherever whether which while whither who who'd who'll who's whoever
	whose why with within without won't would wouldn't yet you you'd you'll
	you're you've your yours yourself yourselves
`)

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		set[w] = struct{}{}
	}
	return set
}

// IsStopword reports whether word is ignored when counting.
func IsStopword(word string) bool {
	_, ok := stopwords[strings.ToLower(word)]
	return ok
}

// Frequencies counts the words of text, lowercased and trimmed of
// surrounding punctuation. Stopwords, numbers and words shorter than three
// letters are skipped.
func Frequencies(text string) map[string]int {
	counts := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if len([]rune(word)) < 3 || IsStopword(word) || !valid(word) {
			continue
		}
		counts[word]++
	}
	return counts
}

// Merge adds up several frequency maps.
func Merge(counts ...map[string]int) map[string]int {
	out := make(map[string]int)
	for _, c := range counts {
		for word, n := range c {
			out[word] += n
		}
	}
	return out
}

// Top returns the n most frequent words. Ties are ordered alphabetically so
// the result is stable.
func Top(counts map[string]int, n int) []string {
	if n <= 0 {
		return nil
	}
	type kv struct {
		word  string
		count int
	}
	ss := make([]kv, 0, len(counts))
	for w, c := range counts {
		ss = append(ss, kv{w, c})
	}
	sort.Slice(ss, func(i, j int) bool {
		if ss[i].count != ss[j].count {
			return ss[i].count > ss[j].count
		}
		return ss[i].word < ss[j].word
	})
	if len(ss) > n {
		ss = ss[:n]
	}
	out := make([]string, len(ss))
	for i, e := range ss {
		out[i] = e.word
	}
	return out
}

// valid rejects numbers and tokens with unbalanced quotes or brackets.
func valid(word string) bool {
	hasLetter := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return false
	}
	for _, pair := range [][2]string{{"(", ")"}, {"[", "]"}, {"{", "}"}} {
		if strings.Count(word, pair[0]) != strings.Count(word, pair[1]) {
			return false
		}
	}
	return strings.Count(word, "\"")%2 == 0
}
