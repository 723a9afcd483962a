package sigv4

import "time"

// SigningTime is the instant a request is signed at, normalized to UTC and
// truncated to whole seconds so that the X-Amz-Date header and the credential
// scope always derive from one value.
type SigningTime struct {
	time.Time
}

// NewSigningTime converts t to UTC and drops sub-second precision.
func NewSigningTime(t time.Time) SigningTime {
	return SigningTime{Time: t.UTC().Truncate(time.Second)}
}

// TimeFormat returns the X-Amz-Date representation, e.g. 20231201T120000Z.
func (st SigningTime) TimeFormat() string {
	return st.Time.Format(TimeFormat)
}

// ShortTimeFormat returns the credential scope date, e.g. 20231201.
func (st SigningTime) ShortTimeFormat() string {
	return st.Time.Format(ShortTimeFormat)
}
