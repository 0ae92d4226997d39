package icons

import "strings"

// Entry maps a URL substring to the sprite icon shown for links containing it.
type Entry struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	Icon    string `yaml:"icon" json:"icon"`
}

// Table is an ordered, read-only list of social link patterns. Order
// matters: lookups return the first entry whose pattern matches.
type Table struct {
	entries []Entry
}

var defaultEntries = []Entry{
	{"behance.net", "behance"},
	{"codepen.io", "codepen"},
	{"deviantart.com", "deviantart"},
	{"digg.com", "digg"},
	{"docker.com", "dockerhub"},
	{"dribbble.com", "dribbble"},
	{"dropbox.com", "dropbox"},
	{"facebook.com", "facebook"},
	{"flickr.com", "flickr"},
	{"foursquare.com", "foursquare"},
	{"plus.google.com", "google-plus"},
	{"github.com", "github"},
	{"instagram.com", "instagram"},
	{"linkedin.com", "linkedin"},
	{"mailto:", "envelope-o"},
	{"medium.com", "medium"},
	{"pinterest.com", "pinterest-p"},
	{"pscp.tv", "periscope"},
	{"getpocket.com", "get-pocket"},
	{"reddit.com", "reddit-alien"},
	{"skype.com", "skype"},
	{"skype:", "skype"},
	{"slideshare.net", "slideshare"},
	{"snapchat.com", "snapchat-ghost"},
	{"soundcloud.com", "soundcloud"},
	{"spotify.com", "spotify"},
	{"stumbleupon.com", "stumbleupon"},
	{"tumblr.com", "tumblr"},
	{"twitch.tv", "twitch"},
	{"twitter.com", "twitter"},
	{"vimeo.com", "vimeo"},
	{"vine.co", "vine"},
	{"vk.com", "vk"},
	{"wordpress.org", "wordpress"},
	{"wordpress.com", "wordpress"},
	{"yelp.com", "yelp"},
	{"youtube.com", "youtube"},
}

// DefaultTable returns the built-in social link table.
func DefaultTable() *Table {
	return NewTable(defaultEntries...)
}

// NewTable builds a table from entries. A repeated pattern replaces the
// earlier entry in place; entries with an empty pattern are ignored.
func NewTable(entries ...Entry) *Table {
	t := &Table{}
	return t.With(entries...)
}

// With returns a copy of t with overrides applied. An override whose
// pattern already exists replaces that entry's icon without moving it,
// a new pattern is appended, and an empty icon removes the pattern.
func (t *Table) With(overrides ...Entry) *Table {
	out := &Table{entries: make([]Entry, 0, len(t.entries)+len(overrides))}
	out.entries = append(out.entries, t.entries...)
	for _, o := range overrides {
		if o.Pattern == "" {
			continue
		}
		idx := out.index(o.Pattern)
		switch {
		case o.Icon == "" && idx >= 0:
			out.entries = append(out.entries[:idx], out.entries[idx+1:]...)
		case o.Icon == "":
		case idx >= 0:
			out.entries[idx].Icon = o.Icon
		default:
			out.entries = append(out.entries, o)
		}
	}
	return out
}

// Entries returns a copy of the table in lookup order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// SocialIconFor returns the icon of the first entry whose pattern is a
// substring of url.
func (t *Table) SocialIconFor(url string) (string, bool) {
	for _, e := range t.entries {
		if strings.Contains(url, e.Pattern) {
			return e.Icon, true
		}
	}
	return "", false
}

// Matches returns every entry whose pattern is a substring of s, in table order.
func (t *Table) Matches(s string) []Entry {
	var out []Entry
	for _, e := range t.entries {
		if strings.Contains(s, e.Pattern) {
			out = append(out, e)
		}
	}
	return out
}

func (t *Table) index(pattern string) int {
	for i, e := range t.entries {
		if e.Pattern == pattern {
			return i
		}
	}
	return -1
}
