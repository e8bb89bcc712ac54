// Package protect holds the ordered protection rules and the masker that hides
// technical fragments (placeholders, markup, URLs, identifiers...) from the word translator.
package protect

import (
	"regexp"
	"strings"
)

// Version identifies the rule order below. Bump it whenever a rule is added,
// removed or moved, since order changes which fragment wins on overlaps.
const Version = 3

// Rule is one named category of content that must never be translated.
type Rule struct {
	Name string
	re   *regexp.Regexp
	// group selects the submatch that is protected; 0 protects the whole match.
	group int
}

// NewRule compiles a rule. It panics on an invalid pattern, like regexp.MustCompile.
func NewRule(name, pattern string) Rule {
	return Rule{Name: name, re: regexp.MustCompile(pattern)}
}

// newGroupRule protects only the given submatch, leaving the rest of the match in place.
func newGroupRule(name, pattern string, group int) Rule {
	r := NewRule(name, pattern)
	r.group = group

	return r
}

// Pattern returns the source of the compiled expression.
func (r Rule) Pattern() string {
	return r.re.String()
}

// spans returns the protected [start, end) ranges of every non-overlapping match.
func (r Rule) spans(text string) [][2]int {
	matches := r.re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	out := make([][2]int, 0, len(matches))

	for _, loc := range matches {
		start, end := loc[2*r.group], loc[2*r.group+1]
		if start < 0 || end <= start {
			continue
		}

		out = append(out, [2]int{start, end})
	}

	return out
}

// RuleSet is an explicit ordered list of rules. Earlier rules take precedence.
type RuleSet struct {
	version int
	rules   []Rule
}

// NewRuleSet builds a rule set tried in the given order.
func NewRuleSet(version int, rules ...Rule) RuleSet {
	ordered := make([]Rule, len(rules))
	copy(ordered, rules)

	return RuleSet{version: version, rules: ordered}
}

// Version returns the version tag of the ordering.
func (rs RuleSet) Version() int {
	return rs.version
}

// Rules returns a copy of the rules in application order.
func (rs RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)

	return out
}

// Names returns rule names in application order.
func (rs RuleSet) Names() []string {
	names := make([]string, len(rs.rules))
	for i, r := range rs.rules {
		names[i] = r.Name
	}

	return names
}

// CountMatches counts matches of every rule against the raw text. Rules are
// evaluated independently, so overlapping categories are each counted.
func (rs RuleSet) CountMatches(text string) int {
	total := 0
	for _, r := range rs.rules {
		total += len(r.spans(text))
	}

	return total
}

const emojiClass = `\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}` +
	`\x{2600}-\x{27BF}\x{1F900}-\x{1F9FF}\x{1F018}-\x{1F0F5}\x{1F200}-\x{1F2FF}`

var botCommands = []string{
	"vid", "audio", "img", "search", "subs", "format", "split", "proxy", "keyboard", "args",
	"nsfw", "clean", "help", "settings", "usage", "playlist", "link", "list", "mediainfo", "tags",
	"add_bot_to_group", "auto_cache", "check_porn", "uncache", "block_user", "unblock_user", "promo",
	"user_logs", "bot_data", "update_porn", "reload_cache", "check_cookie", "cookies_from_browser",
	"save_as_cookie", "cookie",
}

var botHandles = []string{
	"vid", "tgytdlp_it_bot", "tgytdlp_uae_bot", "tgytdlp_uk_bot", "tgytdlp_fr_bot", "tg_ytdlp",
	"iilililiiillliiliililliilliliiil", "upekshaip", "IIlIlIlIIIlllIIlIIlIllIIllIlIIIl",
}

// TechnicalPrefixes are identifier prefixes of configuration and infrastructure constants.
var TechnicalPrefixes = []string{"FIREBASE_", "Config.", "ADMIN_", "DB_", "MAGIC_"}

var technicalVarPrefixes = append(append([]string{}, TechnicalPrefixes...),
	"YTDLP_", "GALLERY_DL_", "FFMPEG_", "HELPER_", "SENDER_", "URL_PARSER_", "VIDEO_EXTRACTOR_",
	"THUMBNAIL_", "POT_", "SAFE_MESSENGER_", "HANDLER_REGISTRY_", "APP_INSTANCE_", "CAPTION_",
	"UPDATE_", "RESTORE_", "MULTILANG_", "LANGUAGE_ROUTER_",
)

var socialPlatforms = []string{
	"YouTube", "TikTok", "Instagram", "Twitter", "Facebook", "VK", "Vimeo", "Twitch", "Rutube",
	"Pornhub", "OnlyFans", "Patreon", "Discord", "Telegram", "WhatsApp", "Signal", "Skype", "Zoom",
	"Teams", "Slack", "Reddit", "LinkedIn", "Pinterest", "Snapchat", "Tumblr", "Flickr", "Imgur",
	"DeviantArt", "ArtStation", "Behance", "Dribbble", "GitHub", "GitLab", "Bitbucket",
	"StackOverflow", "Medium", `Dev\.to`, "Hashnode", "Substack", "Ghost", "WordPress", "Joomla",
	"Drupal", "Magento", "Shopify", "WooCommerce", "PrestaShop", "OpenCart", "BigCommerce",
	"Squarespace", "Wix", "Webflow", "Framer", "Figma", "Sketch", "Adobe", "Canva", "Unsplash",
	"Pexels", "Pixabay", "Freepik", "Shutterstock", "Getty", "iStock", "Depositphotos", "123RF",
	"Dreamstime", "Alamy", "Westend61", "Corbis", "Masterfile", "Photodisc", "ImageSource", "Blend",
	"Stocksy", "Offset", "Moment", "Twenty20",
}

func alternation(words []string, quote bool) string {
	parts := make([]string, len(words))
	for i, w := range words {
		if quote {
			w = regexp.QuoteMeta(w)
		}

		parts[i] = w
	}

	return "(?:" + strings.Join(parts, "|") + ")"
}

// Default returns the built-in rule set. Order matters: explicit placeholders
// and markup come before the broad identifier-like categories.
func Default() RuleSet {
	return defaultRules
}

var defaultRules = NewRuleSet(Version,
	NewRule("placeholders", `\{[^}]+\}`),
	NewRule("html_tags", `</?[a-zA-Z][a-zA-Z0-9]*(\s+[^>]*?)?>`),
	NewRule("md_strong", `\*\*[^*]+\*\*`),
	NewRule("md_em", `\*[^*\n]+\*`),
	NewRule("md_u", `__[^_\n]+__`),
	NewRule("md_i", `_[^_\n]+_`),
	NewRule("backticks", "`[^`]*`"),
	newGroupRule("slash_commands", `(?:^|\s)(/[A-Za-z0-9_]+(?:[ \t]+[^\n]*)?)`, 1),
	NewRule("at_handles", `@[A-Za-z0-9_]+`),
	NewRule("urls", `(?i)(?:https?://[^\s<>"]+|www\.[^\s<>"]+|(?:youtube|tiktok|instagram|twitter|facebook)\.com[^\s<>"]*)`),
	NewRule("underscored", `\b[A-Za-z0-9]+_[A-Za-z0-9_]+\b`),
	NewRule("versions", `(?i)\bv?\d+\.\d+\.\d+\b`),
	NewRule("sizes_units", `(?i)\b(?:\d+(?:\.\d+)?(?:MB|GB|KB)|\d+p|[48]K)\b`),
	NewRule("dates_times", `\b(?:\d{8}|\d{2}:\d{2}:\d{2})\b`),
	NewRule("ips", `\b(?:\d{1,3}\.){3}\d{1,3}(?:/\d{1,2})?\b`),
	NewRule("emails", `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
	NewRule("hashes", `\b(?:[A-Za-z]+[0-9]|[0-9]+[A-Za-z])[A-Za-z0-9_-]*\b`),
	NewRule("paths", `(?:[A-Za-z]:\\[^\s"']+|/[^ \t\n"']+|[A-Za-z0-9_\-]+/[A-Za-z0-9_\-./{}]+)`),
	NewRule("extensions", `(?i)\.(?:txt|py|js|mp4|avi|mkv|mp3|wav|webm|ogg|flac)\b`),
	NewRule("protocols", `\b(?:HTTP|HTTPS|FTP|SSH)\b`),
	NewRule("currency_percent", `[$€₽]\s?\d+(?:\.\d+)?|\b\d+(?:\.\d+)?%`),
	NewRule("country_codes", `\b(?:US|GB|DE|FR|JP)\b`),
	NewRule("codecs", `(?i)\b(?:MP4|MKV|AVI|MOV|WEBM|H\.264|AV1|VP9|avc1|av01|vp09|MP3|WAV|AAC|FLAC|OGG)\b`),
	NewRule("bot_commands", `(?i)/`+alternation(botCommands, false)+`(?:\s+[^\n]*)?`),
	NewRule("bot_handles", `(?i)@`+alternation(botHandles, false)),
	NewRule("technical_vars", `\b`+alternation(technicalVarPrefixes, true)+`[A-Za-z0-9_]*\b`),
	NewRule("emojis", `[`+emojiClass+`]+`),
	NewRule("special_chars", `[\x{2022}\x{25B6}\x{FE0F}\x{200D}\x{23F3}\x{231B}\x{23EF}\x{2B05}-\x{2B07}\x{2139}\x{2705}\x{274C}\x{26A0}\x{1F100}-\x{1F1FF}]`),
	NewRule("time_formats", `(?i)\b(?:\d{1,2}:\d{2}(?::\d{2})?(?:\s*[AP]M)?|\d+(?:\.\d+)?\s*(?:hours?|minutes?|seconds?|hrs?|mins?|secs?))\b`),
	NewRule("file_sizes", `(?i)\b(?:\d+(?:\.\d+)?\s*(?:KB|MB|GB|TB|PB|EB|ZB|YB))\b`),
	NewRule("quality_formats", `(?i)\b(?:\d+p|4K|8K|HD|FHD|UHD|SD|LD)\b`),
	NewRule("browser_names", `(?i)\b(?:Chrome|Firefox|Safari|Edge|Opera|Brave|Vivaldi|Chromium)\b`),
	NewRule("os_names", `(?i)\b(?:Windows|macOS|Linux|iOS|Android|Ubuntu|Debian|CentOS|Fedora|Arch|Mint|Elementary|Pop|Manjaro)\b`),
	NewRule("social_platforms", `(?i)\b`+alternation(socialPlatforms, false)+`\b`),
)
