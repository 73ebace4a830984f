package config

import (
	"strings"

	"github.com/charmbracelet/log"
)

// API_URL_KEY is the environment variable holding the API base URL.
const API_URL_KEY = "API_URL"

// EndpointName identifies a single entry in the endpoint table.
type EndpointName string

const (
	AUTH_LOGIN   EndpointName = "AUTH.LOGIN"
	AUTH_REFRESH EndpointName = "AUTH.REFRESH"
	AUTH_LOGOUT  EndpointName = "AUTH.LOGOUT"
	QUESTIONS    EndpointName = "QUESTIONS"
	USERS        EndpointName = "USERS"
	PROGRESS     EndpointName = "PROGRESS"
	LEADERBOARD  EndpointName = "LEADERBOARD"
)

// suffixes keeps the declared order of the table.
var suffixes = []struct {
	name   EndpointName
	suffix string
}{
	{AUTH_LOGIN, "/api/auth/login"},
	{AUTH_REFRESH, "/api/auth/refresh"},
	{AUTH_LOGOUT, "/api/auth/logout"},
	{QUESTIONS, "/questions"},
	{USERS, "/api/users"},
	{PROGRESS, "/api/progress"},
	{LEADERBOARD, "/api/leaderboard"},
}

// AuthEndpoints groups the authentication urls.
type AuthEndpoints struct {
	Login   string
	Refresh string
	Logout  string
}

// Endpoints is the resolved table of api urls.
// It is passed around by value so nobody holding a copy can change what others read.
type Endpoints struct {
	BaseURL     string
	Auth        AuthEndpoints
	Questions   string
	Users       string
	Progress    string
	Leaderboard string
}

// Resolve builds the endpoint table by appending each path to baseURL as is.
// An empty baseURL is logged as an error but the table is still built, leaving every entry as a bare path.
func Resolve(baseURL string, logger *log.Logger) Endpoints {
	if logger == nil {
		logger = log.Default()
	}
	if baseURL == "" {
		logger.Errorf("%s is not defined", API_URL_KEY)
	} else {
		logger.Info("API base URL", "base_url", baseURL)
	}

	return Endpoints{
		BaseURL: baseURL,
		Auth: AuthEndpoints{
			Login:   baseURL + suffixOf(AUTH_LOGIN),
			Refresh: baseURL + suffixOf(AUTH_REFRESH),
			Logout:  baseURL + suffixOf(AUTH_LOGOUT),
		},
		Questions:   baseURL + suffixOf(QUESTIONS),
		Users:       baseURL + suffixOf(USERS),
		Progress:    baseURL + suffixOf(PROGRESS),
		Leaderboard: baseURL + suffixOf(LEADERBOARD),
	}
}

// Names returns every endpoint identifier in declared order.
func Names() []EndpointName {
	names := make([]EndpointName, len(suffixes))
	for i, s := range suffixes {
		names[i] = s.name
	}
	return names
}

// Lookup returns the url for the given identifier. Identifiers are case insensitive.
func (e Endpoints) Lookup(name string) (string, bool) {
	switch EndpointName(strings.ToUpper(strings.TrimSpace(name))) {
	case AUTH_LOGIN:
		return e.Auth.Login, true
	case AUTH_REFRESH:
		return e.Auth.Refresh, true
	case AUTH_LOGOUT:
		return e.Auth.Logout, true
	case QUESTIONS:
		return e.Questions, true
	case USERS:
		return e.Users, true
	case PROGRESS:
		return e.Progress, true
	case LEADERBOARD:
		return e.Leaderboard, true
	}
	return "", false
}

// Table returns a new map with every entry. Changes to the map are not seen by e.
func (e Endpoints) Table() map[EndpointName]string {
	table := make(map[EndpointName]string, len(suffixes))
	for _, s := range suffixes {
		table[s.name], _ = e.Lookup(string(s.name))
	}
	return table
}

// Relative reports whether the table was resolved without a base url.
func (e Endpoints) Relative() bool {
	return e.BaseURL == ""
}

func suffixOf(name EndpointName) string {
	for _, s := range suffixes {
		if s.name == name {
			return s.suffix
		}
	}
	return ""
}
