package config

import (
	"encoding/json"
	"log"
)

// Rules returns the typed moderation rules from the runtime config,
// falling back to built-in defaults for anything unset. The decoded
// struct is cached until the next Merge.
func (c *Config) Rules() Rules {
	c.mutex.RLock()
	if c.rules != nil {
		defer c.mutex.RUnlock()
		return *c.rules
	}
	c.mutex.RUnlock()

	rules := DefaultRules()
	section := c.section("moderation")
	if section != nil {
		encoded, err := json.Marshal(section)
		if err != nil {
			log.Println("error:", err)
			return rules
		}
		if err := json.Unmarshal(encoded, &rules); err != nil {
			log.Println("error:", err)
			return rules
		}
	}

	c.mutex.Lock()
	c.rules = &rules
	c.mutex.Unlock()
	return rules
}

func (c *Config) section(name string) interface{} {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	if c.current == nil {
		return nil
	}
	return (*c.current)[name]
}

// DefaultRules are the built-in moderation rules, used standalone in
// tests and as the base layer under the runtime config.
func DefaultRules() Rules {
	return Rules{
		Reasons: map[string]float64{
			"スパム・迷惑行為":          1.0,
			"誹謗中傷":              1.0,
			"荒らし行為":             1.0,
			"個人情報の掲載":           1.0,
			"宣伝・広告":             1.0,
			"詐欺・違法行為":           1.0,
			"なりすまし":             1.0,
			"異なる思想の強要":          1.0,
			"アダルトコンテンツを含む":      1.0,
			"画像にアダルトコンテンツを含む":   1.0,
			"不適切な画像":            1.0,
			"話題と無関係":            0.5,
			"重複投稿":              0.5,
			"不快な表現":             0.5,
			"その他":               0.5,
		},
		Groups: ReasonGroups{
			Restricted: []string{
				"スパム・迷惑行為",
				"誹謗中傷",
				"荒らし行為",
				"個人情報の掲載",
				"宣伝・広告",
				"詐欺・違法行為",
				"なりすまし",
				"話題と無関係",
				"重複投稿",
				"不快な表現",
			},
			Ideology:    []string{"異なる思想の強要"},
			Adult:       []string{"アダルトコンテンツを含む"},
			ThreadImage: []string{"不適切な画像", "画像にアダルトコンテンツを含む"},
		},
		Thresholds: Thresholds{
			Restricted: 1.0,
			Ideology:   3.0,
			Adult:      2.0,
			Warn:       1.0,
			Freeze:     2.0,
			Ban:        4.0,
		},
		Credibility: Credibility{
			Floor:        0.3,
			Ceil:         0.8,
			MinReports:   5,
			WindowMonths: 6,
			CacheSeconds: 300,
		},
		Spam: SpamRules{
			NGWords: []string{
				"出会い系",
				"無料プレゼント",
				"副業で稼ぐ",
				"今すぐクリック",
				"簡単に儲かる",
				"違法ダウンロード",
				"カジノ必勝法",
				"高額換金",
				"激安コピー品",
				"フォロワー販売",
				"buy followers",
				"free crypto",
				"casino bonus",
				"click here now",
				"make money fast",
				"cheap replica",
				"adult dating",
				"miracle cure",
				"work from home",
			},
			Levenshtein:      80,
			Trigram:          70,
			HistoryHours:     12,
			URLDailyLimit:    5,
			DailyReportLimit: 10,
		},
		Freezing: FreezeRules{},
	}
}
