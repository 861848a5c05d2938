package yt

import "regexp"

var channelRegex = regexp.MustCompile(`(?i)^https?://(www\.|m\.)?youtube\.com/(@[\w.\-]+|channel/UC[\w\-]{22}|c/[\w.\-]+|user/[\w.\-]+)(/(videos|shorts|streams|featured))?/?$`)

// IsChannelURL indique si s ressemble à une URL de chaîne YouTube.
func IsChannelURL(s string) bool {
	return channelRegex.MatchString(s)
}
