package personalityinsights

// ProfileOption configures a single profile request.
type ProfileOption func(*profileSettings)

type profileSettings struct {
	includeRaw      bool
	acceptLanguage  string
	contentLanguage string
}

func defaultProfileSettings() profileSettings {
	return profileSettings{}
}

// WithRawScores requests raw scores and sampling errors alongside the
// normalised percentiles.
func WithRawScores() ProfileOption {
	return func(s *profileSettings) {
		s.includeRaw = true
	}
}

// WithAcceptLanguage sets the language of the response (Accept-Language header).
func WithAcceptLanguage(lang string) ProfileOption {
	return func(s *profileSettings) {
		if lang != "" {
			s.acceptLanguage = lang
		}
	}
}

// WithContentLanguage declares the language of the submitted content
// (Content-Language header).
func WithContentLanguage(lang string) ProfileOption {
	return func(s *profileSettings) {
		if lang != "" {
			s.contentLanguage = lang
		}
	}
}
