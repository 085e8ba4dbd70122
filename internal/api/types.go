package api

import (
	"strconv"
	"strings"
)

// MediaType distinguishes pictures from videos in backend records.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// APOD is the Astronomy Picture of the Day record.
type APOD struct {
	Title       string    `json:"title"`
	URL         string    `json:"url" validate:"required_without=Title"`
	HDURL       string    `json:"hdurl,omitempty"`
	MediaType   MediaType `json:"media_type"`
	Explanation string    `json:"explanation"`
	Date        string    `json:"date"`
	Copyright   string    `json:"copyright,omitempty"`
}

// IsVideo reports whether the record should be shown as an embed. Unknown
// media types are treated as images.
func (a APOD) IsVideo() bool {
	return a.MediaType == MediaVideo
}

// Vector3 is a J2000 position in kilometres.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Quaternion is a spacecraft attitude.
type Quaternion struct {
	Q0 float64 `json:"q0"`
	Q1 float64 `json:"q1"`
	Q2 float64 `json:"q2"`
	Q3 float64 `json:"q3"`
}

// LatLon is a centroid coordinate in degrees.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// EpicImage is one DSCOVR EPIC Earth image with its positional metadata.
type EpicImage struct {
	Identifier          string      `json:"identifier"`
	Caption             string      `json:"caption"`
	Image               string      `json:"image"`
	ImageURL            string      `json:"imageUrl"`
	Version             string      `json:"version"`
	Date                string      `json:"date"`
	CentroidCoordinates *LatLon     `json:"centroid_coordinates,omitempty"`
	DSCOVRPosition      *Vector3    `json:"dscovr_j2000_position,omitempty"`
	LunarPosition       *Vector3    `json:"lunar_j2000_position,omitempty"`
	SunPosition         *Vector3    `json:"sun_j2000_position,omitempty"`
	AttitudeQuaternions *Quaternion `json:"attitude_quaternions,omitempty"`
}

// LaunchRocket is the rocket summary embedded in a launch.
type LaunchRocket struct {
	RocketID   string `json:"rocket_id"`
	RocketName string `json:"rocket_name"`
	RocketType string `json:"rocket_type"`
}

// LaunchSite is where a launch took place.
type LaunchSite struct {
	SiteID       string `json:"site_id"`
	SiteName     string `json:"site_name"`
	SiteNameLong string `json:"site_name_long"`
}

// LaunchLinks holds media and article links for a launch.
type LaunchLinks struct {
	MissionPatch      string `json:"mission_patch"`
	MissionPatchSmall string `json:"mission_patch_small"`
	ArticleLink       string `json:"article_link"`
	VideoLink         string `json:"video_link"`
	Wikipedia         string `json:"wikipedia"`
}

// Launch is a SpaceX mission record. FlightNumber identifies it within a
// fetched snapshot.
type Launch struct {
	FlightNumber  int          `json:"flight_number" validate:"gt=0"`
	MissionName   string       `json:"mission_name"`
	LaunchYear    string       `json:"launch_year"`
	LaunchDateUTC string       `json:"launch_date_utc"`
	LaunchSuccess *bool        `json:"launch_success"`
	Rocket        LaunchRocket `json:"rocket"`
	LaunchSite    LaunchSite   `json:"launch_site"`
	Links         LaunchLinks  `json:"links"`
	Details       string       `json:"details"`
}

// Key returns the flight number as the string compared against route parameters.
func (l Launch) Key() string {
	return strconv.Itoa(l.FlightNumber)
}

// Rocket is a launch vehicle offered for comparison.
type Rocket struct {
	ID             string   `json:"id"`
	Name           string   `json:"name" validate:"required"`
	Description    string   `json:"description"`
	FirstFlight    string   `json:"first_flight"`
	FlickrImages   []string `json:"flickr_images"`
	Active         bool     `json:"active"`
	Country        string   `json:"country"`
	Company        string   `json:"company"`
	SuccessRatePct int      `json:"success_rate_pct"`
}

// Image returns the first image URL, or an empty string.
func (r Rocket) Image() string {
	if len(r.FlickrImages) == 0 {
		return ""
	}
	return r.FlickrImages[0]
}

// Comparison is the generated text comparing two rockets.
type Comparison struct {
	Text string `json:"comparison" validate:"required"`
}

// CompareRequest is the body of a comparison request.
type CompareRequest struct {
	Rocket1 string `json:"rocket1" validate:"required"`
	Rocket2 string `json:"rocket2" validate:"required"`
}

// MediaItem is one NASA image library search hit.
type MediaItem struct {
	NASAID      string    `json:"nasa_id"`
	Title       string    `json:"title"`
	Thumbnail   string    `json:"thumbnail"`
	MediaType   MediaType `json:"media_type,omitempty"`
	Description string    `json:"description,omitempty"`
}

// VideoURL derives the playable asset from a video thumbnail. It returns an
// empty string when no thumbnail is present.
func (m MediaItem) VideoURL() string {
	if m.Thumbnail == "" {
		return ""
	}
	return strings.Replace(m.Thumbnail, ".jpg", ".mp4", 1)
}
