package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/bububa/adventure-agents/trip"
)

const (
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
)

// OpenMeteo fetches real forecasts from the Open-Meteo API. The free
// endpoints require no API key. A run resolves the location through the
// geocoding endpoint first, then fetches the daily forecast for the
// trip window.
type OpenMeteo struct {
	geocodingURL string
	forecastURL  string
	httpClient   *http.Client
}

func NewOpenMeteo(opts ...OpenMeteoOption) *OpenMeteo {
	ret := new(OpenMeteo)
	for _, opt := range opts {
		opt(ret)
	}
	if ret.geocodingURL == "" {
		ret.geocodingURL = DefaultGeocodingURL
	}
	if ret.forecastURL == "" {
		ret.forecastURL = DefaultForecastURL
	}
	if ret.httpClient == nil {
		ret.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return ret
}

func (o *OpenMeteo) Name() string {
	return "open-meteo"
}

type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
	} `json:"results"`
}

type forecastResponse struct {
	Daily struct {
		Time                     []string  `json:"time"`
		TemperatureMax           []float64 `json:"temperature_2m_max"`
		TemperatureMin           []float64 `json:"temperature_2m_min"`
		PrecipitationSum         []float64 `json:"precipitation_sum"`
		PrecipitationProbability []float64 `json:"precipitation_probability_max"`
		WeatherCode              []int     `json:"weathercode"`
	} `json:"daily"`
}

// Analyze resolves the location and summarizes the daily forecast over
// the trip window. Any network, decoding, or empty-data failure is
// reported as a trip.ProviderError.
func (o *OpenMeteo) Analyze(ctx context.Context, location string, startDate string, endDate string) (*trip.WeatherAnalysis, error) {
	name, lat, lon, err := o.geocode(ctx, location)
	if err != nil {
		return nil, trip.NewProviderError(o.Name(), err)
	}
	forecast, err := o.forecast(ctx, lat, lon, startDate, endDate)
	if err != nil {
		return nil, trip.NewProviderError(o.Name(), err)
	}
	days := len(forecast.Daily.Time)
	if days == 0 || len(forecast.Daily.TemperatureMax) != days || len(forecast.Daily.TemperatureMin) != days {
		return nil, trip.NewProviderError(o.Name(), fmt.Errorf("no forecast data for %s", location))
	}
	minTemp := forecast.Daily.TemperatureMin[0]
	maxTemp := forecast.Daily.TemperatureMax[0]
	for i := 1; i < days; i++ {
		if t := forecast.Daily.TemperatureMin[i]; t < minTemp {
			minTemp = t
		}
		if t := forecast.Daily.TemperatureMax[i]; t > maxTemp {
			maxTemp = t
		}
	}
	var precip float64
	if len(forecast.Daily.PrecipitationProbability) == days {
		for _, p := range forecast.Daily.PrecipitationProbability {
			precip += p
		}
		precip /= float64(days)
	} else {
		precip = 30
	}
	return &trip.WeatherAnalysis{
		Summary:             buildSummary(name, startDate, endDate, minTemp, maxTemp, precip),
		TemperatureRange:    [2]float64{minTemp, maxTemp},
		PrecipitationChance: precip,
		RecommendedClothing: clothingFor(maxTemp, precip),
		WeatherWarnings:     warningsFor(precip),
	}, nil
}

func (o *OpenMeteo) geocode(ctx context.Context, location string) (name string, lat float64, lon float64, err error) {
	values := url.Values{}
	values.Set("name", location)
	values.Set("count", "1")
	values.Set("format", "json")
	var resp geocodingResponse
	if err := o.getJSON(ctx, fmt.Sprintf("%s?%s", o.geocodingURL, values.Encode()), &resp); err != nil {
		return "", 0, 0, err
	}
	if len(resp.Results) == 0 {
		return "", 0, 0, fmt.Errorf("location not found: %s", location)
	}
	hit := resp.Results[0]
	return hit.Name, hit.Latitude, hit.Longitude, nil
}

func (o *OpenMeteo) forecast(ctx context.Context, lat float64, lon float64, startDate string, endDate string) (*forecastResponse, error) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", lat))
	values.Set("longitude", fmt.Sprintf("%f", lon))
	values.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,precipitation_probability_max,weathercode")
	values.Set("timezone", "auto")
	values.Set("start_date", startDate)
	values.Set("end_date", endDate)
	ret := new(forecastResponse)
	if err := o.getJSON(ctx, fmt.Sprintf("%s?%s", o.forecastURL, values.Encode()), ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func (o *OpenMeteo) getJSON(ctx context.Context, link string, dist any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Accept", "application/json")
	httpResp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("non-200 response from open-meteo: %d", httpResp.StatusCode)
	}
	return json.NewDecoder(httpResp.Body).Decode(dist)
}

func buildSummary(location string, startDate string, endDate string, minTemp, maxTemp, precip float64) string {
	prefix := fmt.Sprintf("Weather forecast for %s from %s to %s: ", location, startDate, endDate)
	switch {
	case precip < 20:
		return prefix + fmt.Sprintf("Clear conditions expected with temperatures from %.0f°C to %.0f°C. Perfect for outdoor activities!", minTemp, maxTemp)
	case precip < 50:
		return prefix + fmt.Sprintf("Mixed weather conditions with temperatures from %.0f°C to %.0f°C. Pack for variable weather.", minTemp, maxTemp)
	default:
		return prefix + fmt.Sprintf("Rainy weather likely with temperatures from %.0f°C to %.0f°C. Indoor activities recommended.", minTemp, maxTemp)
	}
}

func clothingFor(maxTemp float64, precip float64) []string {
	var clothing []string
	switch {
	case maxTemp >= 25:
		clothing = []string{"light t-shirts", "shorts", "sandals", "sun hat"}
	case maxTemp >= 20:
		clothing = []string{"t-shirts", "light pants", "comfortable shoes"}
	case maxTemp >= 15:
		clothing = []string{"long sleeves", "pants", "light jacket"}
	default:
		clothing = []string{"warm clothes", "jacket", "layers"}
	}
	if precip > 30 {
		clothing = append(clothing, "rain jacket", "umbrella")
	}
	return clothing
}

func warningsFor(precip float64) []string {
	if precip > 70 {
		return []string{"High chance of rain - pack rain protection"}
	}
	return nil
}
