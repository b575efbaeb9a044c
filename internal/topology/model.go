package topology

type Compose struct {
	Services map[string]Service `yaml:"services"`
}

type Service struct {
	Image       string       `yaml:"image"`
	Ports       []string     `yaml:"ports,omitempty"`
	Environment []string     `yaml:"environment,omitempty"`
	Volumes     []string     `yaml:"volumes,omitempty"`
	HealthCheck *HealthCheck `yaml:"healthcheck,omitempty"`
}

type HealthCheck struct {
	Test     []string `yaml:"test"`
	Interval string   `yaml:"interval"`
	Timeout  string   `yaml:"timeout"`
	Retries  int      `yaml:"retries"`
}
