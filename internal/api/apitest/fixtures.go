package apitest

import "github.com/alexisbeaulieu97/spacedeck/internal/api"

func boolPtr(b bool) *bool { return &b }

// SampleAPOD returns an image picture of the day.
func SampleAPOD() api.APOD {
	return api.APOD{
		Title:       "The Horsehead Nebula",
		URL:         "https://apod.example/horsehead.jpg",
		MediaType:   api.MediaImage,
		Explanation: "A dark nebula in Orion.",
		Date:        "2024-01-15",
	}
}

// SampleEPIC returns two Earth images with full metadata.
func SampleEPIC() []api.EpicImage {
	return []api.EpicImage{
		{
			Identifier:          "20240115003633",
			Caption:             "This image was taken by NASA's EPIC camera",
			Image:               "epic_1b_20240115003633",
			ImageURL:            "https://epic.example/epic_1b_20240115003633.png",
			Version:             "03",
			Date:                "2024-01-15 00:31:45",
			CentroidCoordinates: &api.LatLon{Lat: -20.123456, Lon: 170.987654},
			DSCOVRPosition:      &api.Vector3{X: -1292573.2, Y: -614436.7, Z: -143470.5},
			SunPosition:         &api.Vector3{X: -39980681.6, Y: 132023185.8, Z: 57232142.2},
			AttitudeQuaternions: &api.Quaternion{Q0: -0.1234567, Q1: 0.6543, Q2: 0.25, Q3: 0.7},
		},
		{
			Identifier: "20240115022144",
			Caption:    "Second frame",
			ImageURL:   "https://epic.example/epic_1b_20240115022144.png",
		},
	}
}

// SampleLaunches returns three launches in ascending flight order.
func SampleLaunches() []api.Launch {
	return []api.Launch{
		{
			FlightNumber:  1,
			MissionName:   "FalconSat",
			LaunchYear:    "2006",
			LaunchSuccess: boolPtr(false),
			Rocket:        api.LaunchRocket{RocketID: "falcon1", RocketName: "Falcon 1"},
			LaunchSite:    api.LaunchSite{SiteName: "Kwajalein Atoll", SiteNameLong: "Kwajalein Atoll Omelek Island"},
			Links:         api.LaunchLinks{MissionPatch: "https://images.example/falconsat.png"},
			Details:       "Engine failure at 33 seconds.",
		},
		{
			FlightNumber:  2,
			MissionName:   "DemoSat",
			LaunchYear:    "2007",
			LaunchSuccess: boolPtr(false),
			Rocket:        api.LaunchRocket{RocketID: "falcon1", RocketName: "Falcon 1"},
			LaunchSite:    api.LaunchSite{SiteNameLong: "Kwajalein Atoll Omelek Island"},
			Links:         api.LaunchLinks{MissionPatch: "https://images.example/demosat.png"},
		},
		{
			FlightNumber:  3,
			MissionName:   "Trailblazer",
			LaunchYear:    "2008",
			LaunchSuccess: boolPtr(true),
			Rocket:        api.LaunchRocket{RocketID: "falcon1", RocketName: "Falcon 1"},
			LaunchSite:    api.LaunchSite{SiteNameLong: "Kwajalein Atoll Omelek Island"},
		},
	}
}

// SampleRockets returns three comparable vehicles.
func SampleRockets() []api.Rocket {
	return []api.Rocket{
		{ID: "falcon1", Name: "Falcon 1", Description: "Small-lift launch vehicle.", FirstFlight: "2006-03-24", FlickrImages: []string{"https://images.example/f1.jpg"}},
		{ID: "falcon9", Name: "Falcon 9", Description: "Two-stage reusable rocket.", FirstFlight: "2010-06-04"},
		{ID: "starship", Name: "Starship", Description: "Fully reusable super heavy-lift.", FirstFlight: "2023-04-20"},
	}
}
