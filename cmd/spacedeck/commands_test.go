package main

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/spacedeck/internal/api"
	"github.com/alexisbeaulieu97/spacedeck/internal/api/apitest"
	"github.com/alexisbeaulieu97/spacedeck/internal/config"
	"github.com/alexisbeaulieu97/spacedeck/internal/tui/views"
)

func TestAPODCommand_Text(t *testing.T) {
	setupHome(t)
	url := startBackend(t, apitest.Fixtures())

	out, err := executeAgainst(t, url, "apod")
	require.NoError(t, err)
	require.Contains(t, out, "The Horsehead Nebula")
	require.Contains(t, out, "Date: 2024-01-15")
	require.Contains(t, out, "Image: https://apod.example/horsehead.jpg")
	require.Contains(t, out, "A dark nebula in Orion.")
}

func TestAPODCommand_DateQueryAndJSON(t *testing.T) {
	setupHome(t)
	backend := apitest.Fixtures()
	url := startBackend(t, backend)

	out, err := executeAgainst(t, url, "apod", "--date", "2024-01-15", "--json")
	require.NoError(t, err)

	var got api.APOD
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "The Horsehead Nebula", got.Title)

	reqs := backend.Requests()
	require.Len(t, reqs, 1)
	require.Equal(t, "2024-01-15", reqs[0].URL.Query().Get("date"))
}

func TestAPODCommand_InvalidDate(t *testing.T) {
	setupHome(t)
	backend := apitest.Fixtures()
	url := startBackend(t, backend)

	_, err := executeAgainst(t, url, "apod", "--date", "15/01/2024")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to show picture of the day: parsing --date")
	require.Empty(t, backend.Requests())
}

func TestEPICCommand_Table(t *testing.T) {
	setupHome(t)
	url := startBackend(t, apitest.Fixtures())

	out, err := executeAgainst(t, url, "epic")
	require.NoError(t, err)
	require.Contains(t, out, "CENTROID")
	require.Contains(t, out, "lat -20.123, lon 170.988")
	require.Contains(t, out, "N/A")
}

func TestMissionsCommand_ListsNewestFirst(t *testing.T) {
	setupHome(t)
	url := startBackend(t, apitest.Fixtures())

	out, err := executeAgainst(t, url, "missions")
	require.NoError(t, err)
	require.Contains(t, out, "Showing 3 of 3")
	require.Less(t, strings.Index(out, "Trailblazer"), strings.Index(out, "FalconSat"))
	require.NotContains(t, out, "Run with --page")
}

func TestMissionsCommand_QueryIsCaseInsensitive(t *testing.T) {
	setupHome(t)
	url := startBackend(t, apitest.Fixtures())

	out, err := executeAgainst(t, url, "missions", "--query", "SAT", "--json")
	require.NoError(t, err)

	var got missionsPayload
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, 2, got.Total)
	require.Len(t, got.Missions, 2)
	require.Equal(t, "DemoSat", got.Missions[0].MissionName)
	require.False(t, got.HasMore)
}

func TestMissionsCommand_PagesFromConfig(t *testing.T) {
	setupHome(t)
	url := startBackend(t, apitest.Fixtures())
	cfgPath := writeConfigFile(t, "page_size: 2\n")

	out, err := executeAgainst(t, url, "--config", cfgPath, "missions")
	require.NoError(t, err)
	require.Contains(t, out, "Showing 2 of 3")
	require.Contains(t, out, "Run with --page 2 to see more.")

	out, err = executeAgainst(t, url, "--config", cfgPath, "missions", "--page", "2")
	require.NoError(t, err)
	require.Contains(t, out, "Showing 3 of 3")
}

func TestMissionsCommand_QueryKeepsWhitespace(t *testing.T) {
	setupHome(t)
	url := startBackend(t, apitest.Fixtures())

	out, err := executeAgainst(t, url, "missions", "--query", "Falcon ")
	require.NoError(t, err)
	require.Contains(t, out, "No missions match your search.")
}

func TestMissionsCommand_SkipsIncompleteRecords(t *testing.T) {
	setupHome(t)
	backend := apitest.Fixtures()
	backend.Launches = apitest.Raw(http.StatusOK, `[{"flight_number": 4, "mission_name": "RatSat"}, {"mission_name": "Orphan"}]`)
	url := startBackend(t, backend)

	out, err := executeAgainst(t, url, "missions")
	require.NoError(t, err)
	require.Contains(t, out, "RatSat")
	require.NotContains(t, out, "Orphan")
	require.Contains(t, out, "Showing 1 of 1")
}

func TestMissionsCommand_NoMatches(t *testing.T) {
	setupHome(t)
	url := startBackend(t, apitest.Fixtures())

	out, err := executeAgainst(t, url, "missions", "--query", "starlink")
	require.NoError(t, err)
	require.Contains(t, out, "No missions match your search.")
}

func TestMissionsCommand_RejectsNonPositivePage(t *testing.T) {
	setupHome(t)
	url := startBackend(t, apitest.Fixtures())

	_, err := executeAgainst(t, url, "missions", "--page", "0")
	require.Error(t, err)
	require.Contains(t, err.Error(), "validating --page")
}

func TestMissionsCommand_BackendFailureUsesStaticMessage(t *testing.T) {
	setupHome(t)
	backend := apitest.Fixtures()
	backend.Launches = apitest.Raw(http.StatusInternalServerError, `{"error":"database offline"}`)
	url := startBackend(t, backend)

	out, err := executeAgainst(t, url, "missions")
	require.Error(t, err)
	require.Empty(t, out)
	require.Contains(t, err.Error(), "Failed to list missions: "+views.MissionsFailure)
	require.Contains(t, err.Error(), "Check that the backend at "+url)
}

func TestMissionCommand_Found(t *testing.T) {
	setupHome(t)
	url := startBackend(t, apitest.Fixtures())

	out, err := executeAgainst(t, url, "mission", "1")
	require.NoError(t, err)
	require.Contains(t, out, "Mission #1: FalconSat")
	require.Contains(t, out, "Outcome: failure")
	require.Contains(t, out, "Engine failure at 33 seconds.")
}

func TestMissionCommand_PlaceholdersForMissingFields(t *testing.T) {
	setupHome(t)
	url := startBackend(t, apitest.Fixtures())

	out, err := executeAgainst(t, url, "mission", "3")
	require.NoError(t, err)
	require.Contains(t, out, "Patch: No patch image")
	require.Contains(t, out, "No additional details available.")
}

func TestMissionCommand_NotFound(t *testing.T) {
	setupHome(t)
	url := startBackend(t, apitest.Fixtures())

	out, err := executeAgainst(t, url, "mission", "99")
	require.NoError(t, err)
	require.Equal(t, views.MissionNotFound+"\n", out)
}

func TestMissionCommand_RejectsNonNumericFlight(t *testing.T) {
	setupHome(t)
	backend := apitest.Fixtures()
	url := startBackend(t, backend)

	_, err := executeAgainst(t, url, "mission", "falconsat")
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing flight number")
	require.Empty(t, backend.Requests())
}

func TestRocketsCommand(t *testing.T) {
	setupHome(t)
	url := startBackend(t, apitest.Fixtures())

	out, err := executeAgainst(t, url, "rockets")
	require.NoError(t, err)
	require.Contains(t, out, "Falcon 9")
	require.Contains(t, out, "2023-04-20")
}

func TestCompareCommand(t *testing.T) {
	setupHome(t)
	url := startBackend(t, apitest.Fixtures())

	out, err := executeAgainst(t, url, "compare", "Falcon 1", "Starship")
	require.NoError(t, err)
	require.Contains(t, out, "Falcon 1 vs Starship")
	require.Contains(t, out, "Falcon 1 versus Starship")
}

func TestCompareCommand_Failure(t *testing.T) {
	setupHome(t)
	backend := apitest.Fixtures()
	backend.CompareRockets = apitest.Raw(http.StatusBadGateway, "upstream down")
	url := startBackend(t, backend)

	_, err := executeAgainst(t, url, "compare", "Falcon 1", "Starship")
	require.Error(t, err)
	require.Contains(t, err.Error(), views.CompareFailure)
}

func TestCompareCommand_RejectsSameRocket(t *testing.T) {
	setupHome(t)
	backend := apitest.Fixtures()
	url := startBackend(t, backend)

	_, err := executeAgainst(t, url, "compare", "Starship", "starship")
	require.Error(t, err)
	require.Contains(t, err.Error(), "with itself")
	require.Empty(t, backend.Requests())
}

func TestExploreCommand_ListsEveryPlanet(t *testing.T) {
	setupHome(t)
	backend := apitest.Fixtures()
	url := startBackend(t, backend)

	out, err := executeAgainst(t, url, "explore", "--json")
	require.NoError(t, err)

	var got []planetPayload
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, len(views.Planets))
	require.Equal(t, "mercury", got[0].Planet)
	require.Len(t, got[0].Images, 1)
	require.Len(t, got[0].Videos, 1)
	require.Equal(t, 2*len(views.Planets), backend.Count("/api/nasa-images"))
}

func TestExploreCommand_SinglePlanetWithFailedVideos(t *testing.T) {
	setupHome(t)
	backend := apitest.Fixtures()
	images := backend.NASAImages
	backend.NASAImages = func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("media_type") == string(api.MediaVideo) {
			apitest.Raw(http.StatusInternalServerError, "boom")(w, r)
			return
		}
		images(w, r)
	}
	url := startBackend(t, backend)

	out, err := executeAgainst(t, url, "explore", "mars")
	require.NoError(t, err)
	require.Contains(t, out, "mars")
	require.Contains(t, out, "https://images.example/mars.jpg")
	require.NotContains(t, out, "venus")
}

func TestExploreCommand_AllEmpty(t *testing.T) {
	setupHome(t)
	backend := apitest.Fixtures()
	backend.NASAImages = apitest.JSON(http.StatusOK, []api.MediaItem{})
	url := startBackend(t, backend)

	out, err := executeAgainst(t, url, "explore")
	require.NoError(t, err)
	require.Equal(t, views.ExploreAllEmpty+"\n", out)
}

func TestExploreCommand_UnknownPlanet(t *testing.T) {
	setupHome(t)
	url := startBackend(t, apitest.Fixtures())

	_, err := executeAgainst(t, url, "explore", "pluto")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown planet "pluto"`)
}

func TestCommands_RequireBackendURL(t *testing.T) {
	setupHome(t)

	_, _, err := executeCommand("missions")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to load configuration")
	require.Contains(t, err.Error(), config.EnvBackendURL)
}

func TestCommands_BackendURLFromEnvironment(t *testing.T) {
	setupHome(t)
	t.Setenv(config.EnvBackendURL, startBackend(t, apitest.Fixtures()))

	out, _, err := executeCommand("rockets")
	require.NoError(t, err)
	require.Contains(t, out, "Falcon 1")
}

func TestThemeCommands_PersistAcrossInvocations(t *testing.T) {
	home := setupHome(t)

	out, _, err := executeCommand("theme")
	require.NoError(t, err)
	require.Equal(t, "dark\n", out)

	out, _, err = executeCommand("theme", "toggle")
	require.NoError(t, err)
	require.Equal(t, "Theme set to light\n", out)

	out, _, err = executeCommand("theme", "show")
	require.NoError(t, err)
	require.Equal(t, "light\n", out)

	_, err = os.Stat(filepath.Join(home, ".spacedeck", "preferences.json"))
	require.NoError(t, err)

	out, _, err = executeCommand("theme", "set", "dark")
	require.NoError(t, err)
	require.Equal(t, "Theme set to dark\n", out)
}

func TestThemeSet_RejectsUnknownTheme(t *testing.T) {
	setupHome(t)

	_, _, err := executeCommand("theme", "set", "solarized")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to set theme: parsing theme")
}
