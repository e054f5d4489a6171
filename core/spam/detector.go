// Package spam runs every submission through a short-circuiting
// pipeline: NG-word match, NG-word similarity, similarity to the
// author's recent posts, URL similarity and a daily URL posting limit.
// The first positive check wins.
package spam

import (
	"strings"

	"github.com/kurobbs/core/core/config"
	"github.com/kurobbs/core/core/content"
	"github.com/kurobbs/core/core/similarity"
	"github.com/op/go-logging"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
	"gopkg.in/mgo.v2/bson"
)

var log = logging.MustGetLogger("spam")

// Reason a submission was rejected.
type Reason string

const (
	NGWord        Reason = "ng_word"
	Similarity    Reason = "similarity"
	URLSimilarity Reason = "url_similarity"
	URLPostLimit  Reason = "url_post_limit"
)

// Verdict of the pipeline. Method and Matched describe which metric
// fired against what, for moderator-facing context.
type Verdict struct {
	Spam    bool    `json:"spam"`
	Reason  Reason  `json:"reason,omitempty"`
	Method  string  `json:"method,omitempty"`
	Matched string  `json:"matched,omitempty"`
	Score   float64 `json:"score,omitempty"`
}

// Check runs the full pipeline on a submission body. A nil userID
// (anonymous author) skips the history-based steps; there is nothing
// to compare against.
func Check(d deps, userID *bson.ObjectId, body string) (Verdict, error) {
	rules := config.C.Rules().Spam

	if v := checkNGWords(body, rules); v.Spam {
		return v, nil
	}
	if userID == nil {
		return Verdict{}, nil
	}

	h, err := fetchHistory(d, *userID)
	if err != nil {
		return Verdict{}, err
	}
	if v := checkHistorySimilarity(body, h.bodies, rules); v.Spam {
		return v, nil
	}

	urls := content.ExtractURLs(body)
	if len(urls) == 0 {
		return Verdict{}, nil
	}
	if v := checkURLSimilarity(urls, h.urls, rules); v.Spam {
		return v, nil
	}
	count, err := urlPostsToday(d, *userID)
	if err != nil {
		return Verdict{}, err
	}
	if count >= rules.URLDailyLimit {
		log.Debugf("url post limit hit for %s: %d today", userID.Hex(), count)
		return Verdict{Spam: true, Reason: URLPostLimit}, nil
	}

	return Verdict{}, nil
}

// CheckBio runs only the NG-word steps; profile bios carry no posting
// history.
func CheckBio(body string) Verdict {
	return checkNGWords(body, config.C.Rules().Spam)
}

// checkNGWords covers steps one and two: exact case-insensitive
// substring match first, then the dual similarity metrics against each
// NG word. Either metric crossing its threshold rejects.
func checkNGWords(body string, rules config.SpamRules) Verdict {
	folded := fold(body)
	for _, word := range rules.NGWords {
		w := fold(word)
		if w == "" {
			continue
		}
		if strings.Contains(folded, w) {
			return Verdict{Spam: true, Reason: NGWord, Method: "exact", Matched: word, Score: 100}
		}
		if method, s, hit := dualMetric(folded, w, rules); hit {
			return Verdict{Spam: true, Reason: NGWord, Method: method, Matched: word, Score: s}
		}
	}
	return Verdict{}
}

func checkHistorySimilarity(body string, history []string, rules config.SpamRules) Verdict {
	for _, past := range history {
		if strings.TrimSpace(past) == "" {
			continue
		}
		if method, s, hit := dualMetric(body, past, rules); hit {
			return Verdict{Spam: true, Reason: Similarity, Method: method, Matched: past, Score: s}
		}
	}
	return Verdict{}
}

func checkURLSimilarity(urls, history []string, rules config.SpamRules) Verdict {
	for _, u := range urls {
		for _, past := range history {
			if method, s, hit := dualMetric(u, past, rules); hit {
				return Verdict{Spam: true, Reason: URLSimilarity, Method: method, Matched: past, Score: s}
			}
		}
	}
	return Verdict{}
}

// dualMetric applies both thresholds as an OR. The trigram metric only
// means anything once both strings have three code points.
func dualMetric(a, b string, rules config.SpamRules) (string, float64, bool) {
	if s := similarity.Levenshtein(a, b); s >= rules.Levenshtein {
		return "levenshtein", s, true
	}
	if len([]rune(a)) >= 3 && len([]rune(b)) >= 3 {
		if s := similarity.TrigramJaccard(a, b); s >= rules.Trigram {
			return "trigram", s, true
		}
	}
	return "", 0, false
}

// fold flattens width variants and compatibility forms before
// matching; the NG list spans Japanese and English and must catch
// full-width evasions.
func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(width.Fold.String(s))))
}
