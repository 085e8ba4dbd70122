package views

import (
	"sort"

	"github.com/alexisbeaulieu97/spacedeck/internal/api"
	apperrors "github.com/alexisbeaulieu97/spacedeck/pkg/errors"
)

// YearCount is the number of launches in one year.
type YearCount struct {
	Year  string
	Count int
}

// CountByYear buckets launches by year in ascending year order. Launches
// without a year are skipped.
func CountByYear(launches []api.Launch) []YearCount {
	counts := make(map[string]int)
	for _, l := range launches {
		if l.LaunchYear == "" {
			continue
		}
		counts[l.LaunchYear]++
	}

	out := make([]YearCount, 0, len(counts))
	for year, n := range counts {
		out = append(out, YearCount{Year: year, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Year) != len(out[j].Year) {
			return len(out[i].Year) < len(out[j].Year)
		}
		return out[i].Year < out[j].Year
	})
	return out
}

// Outcomes counts successful and failed launches. Launches with an unknown
// outcome count towards neither.
func Outcomes(launches []api.Launch) (success, failure int) {
	for _, l := range launches {
		if l.LaunchSuccess == nil {
			continue
		}
		if *l.LaunchSuccess {
			success++
		} else {
			failure++
		}
	}
	return success, failure
}

// SortByFlightDesc returns a copy of launches, newest flight first.
func SortByFlightDesc(launches []api.Launch) []api.Launch {
	out := append([]api.Launch(nil), launches...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FlightNumber > out[j].FlightNumber
	})
	return out
}

// WithPatch keeps the launches that have a mission patch image.
func WithPatch(launches []api.Launch) []api.Launch {
	out := make([]api.Launch, 0, len(launches))
	for _, l := range launches {
		if l.Links.MissionPatch != "" {
			out = append(out, l)
		}
	}
	return out
}

// FindByFlight looks up a launch by the string form of its flight number.
// A missing flight yields a not_found FetchError.
func FindByFlight(launches []api.Launch, key string) (api.Launch, error) {
	for _, l := range launches {
		if l.Key() == key {
			return l, nil
		}
	}
	return api.Launch{}, apperrors.NewNotFoundError("mission", key)
}

func missionName(l api.Launch) string { return l.MissionName }
