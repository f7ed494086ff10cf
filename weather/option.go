package weather

import "net/http"

type OpenMeteoOption func(*OpenMeteo)

// WithGeocodingURL overrides the geocoding endpoint.
func WithGeocodingURL(link string) OpenMeteoOption {
	return func(o *OpenMeteo) {
		o.geocodingURL = link
	}
}

// WithForecastURL overrides the forecast endpoint.
func WithForecastURL(link string) OpenMeteoOption {
	return func(o *OpenMeteo) {
		o.forecastURL = link
	}
}

func WithHttpClient(clt *http.Client) OpenMeteoOption {
	return func(o *OpenMeteo) {
		o.httpClient = clt
	}
}
