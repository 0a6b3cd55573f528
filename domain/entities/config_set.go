package entities

// ConfigSet groups the configuration stores a device can expose
type ConfigSet struct {
	Running   string `json:"running"`
	Startup   string `json:"startup"`
	Candidate string `json:"candidate"`
}
