package models

// Site is a hosted web site.
type Site struct {
	ID                        string     `json:"$id"`
	CreatedAt                 string     `json:"$createdAt"`
	UpdatedAt                 string     `json:"$updatedAt"`
	Name                      string     `json:"name"`
	Enabled                   bool       `json:"enabled"`
	Live                      bool       `json:"live"`
	Logging                   bool       `json:"logging"`
	Framework                 string     `json:"framework"`
	DeploymentID              string     `json:"deploymentId"`
	DeploymentCreatedAt       string     `json:"deploymentCreatedAt"`
	DeploymentScreenshotLight string     `json:"deploymentScreenshotLight"`
	DeploymentScreenshotDark  string     `json:"deploymentScreenshotDark"`
	LatestDeploymentID        string     `json:"latestDeploymentId"`
	LatestDeploymentCreatedAt string     `json:"latestDeploymentCreatedAt"`
	LatestDeploymentStatus    string     `json:"latestDeploymentStatus"`
	Vars                      []Variable `json:"vars"`
	Timeout                   int        `json:"timeout"`
	InstallCommand            string     `json:"installCommand"`
	BuildCommand              string     `json:"buildCommand"`
	OutputDirectory           string     `json:"outputDirectory"`
	InstallationID            string     `json:"installationId"`
	ProviderRepositoryID      string     `json:"providerRepositoryId"`
	ProviderBranch            string     `json:"providerBranch"`
	ProviderRootDirectory     string     `json:"providerRootDirectory"`
	ProviderSilentMode        bool       `json:"providerSilentMode"`
	Specification             string     `json:"specification"`
	BuildRuntime              string     `json:"buildRuntime"`
	Adapter                   string     `json:"adapter"`
	FallbackFile              string     `json:"fallbackFile"`
}

// SiteList is a page of sites.
type SiteList struct {
	Total int    `json:"total"`
	Sites []Site `json:"sites"`
}

// Framework is a site framework supported by the server.
type Framework struct {
	Key          string             `json:"key"`
	Name         string             `json:"name"`
	BuildRuntime string             `json:"buildRuntime"`
	Runtimes     []string           `json:"runtimes"`
	Adapters     []FrameworkAdapter `json:"adapters"`
}

// FrameworkAdapter holds the default build settings of a framework adapter.
type FrameworkAdapter struct {
	Key             string `json:"key"`
	InstallCommand  string `json:"installCommand"`
	BuildCommand    string `json:"buildCommand"`
	OutputDirectory string `json:"outputDirectory"`
	FallbackFile    string `json:"fallbackFile"`
}

// FrameworkList lists supported frameworks.
type FrameworkList struct {
	Total      int         `json:"total"`
	Frameworks []Framework `json:"frameworks"`
}

// Specification is a compute size a site can run on.
type Specification struct {
	Memory  int     `json:"memory"`
	CPUs    float64 `json:"cpus"`
	Enabled bool    `json:"enabled"`
	Slug    string  `json:"slug"`
}

// SpecificationList lists compute specifications.
type SpecificationList struct {
	Total          int             `json:"total"`
	Specifications []Specification `json:"specifications"`
}

// Deployment is a build of a site.
type Deployment struct {
	ID                      string `json:"$id"`
	CreatedAt               string `json:"$createdAt"`
	UpdatedAt               string `json:"$updatedAt"`
	Type                    string `json:"type"`
	ResourceID              string `json:"resourceId"`
	ResourceType            string `json:"resourceType"`
	Entrypoint              string `json:"entrypoint"`
	SourceSize              int64  `json:"sourceSize"`
	BuildSize               int64  `json:"buildSize"`
	TotalSize               int64  `json:"totalSize"`
	BuildID                 string `json:"buildId"`
	Activate                bool   `json:"activate"`
	ScreenshotLight         string `json:"screenshotLight"`
	ScreenshotDark          string `json:"screenshotDark"`
	Status                  string `json:"status"`
	BuildLogs               string `json:"buildLogs"`
	BuildDuration           int    `json:"buildDuration"`
	ProviderRepositoryName  string `json:"providerRepositoryName"`
	ProviderRepositoryOwner string `json:"providerRepositoryOwner"`
	ProviderRepositoryURL   string `json:"providerRepositoryUrl"`
	ProviderBranch          string `json:"providerBranch"`
	ProviderCommitHash      string `json:"providerCommitHash"`
	ProviderCommitAuthor    string `json:"providerCommitAuthor"`
	ProviderCommitMessage   string `json:"providerCommitMessage"`
	ProviderCommitURL       string `json:"providerCommitUrl"`
	ProviderBranchURL       string `json:"providerBranchUrl"`
}

// DeploymentList is a page of deployments.
type DeploymentList struct {
	Total       int          `json:"total"`
	Deployments []Deployment `json:"deployments"`
}

// Header is a request or response header captured in an execution log.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Execution is a request log entry of a site.
type Execution struct {
	ID                 string   `json:"$id"`
	CreatedAt          string   `json:"$createdAt"`
	UpdatedAt          string   `json:"$updatedAt"`
	Permissions        []string `json:"$permissions"`
	FunctionID         string   `json:"functionId"`
	DeploymentID       string   `json:"deploymentId"`
	Trigger            string   `json:"trigger"`
	Status             string   `json:"status"`
	RequestMethod      string   `json:"requestMethod"`
	RequestPath        string   `json:"requestPath"`
	RequestHeaders     []Header `json:"requestHeaders"`
	ResponseStatusCode int      `json:"responseStatusCode"`
	ResponseBody       string   `json:"responseBody"`
	ResponseHeaders    []Header `json:"responseHeaders"`
	Logs               string   `json:"logs"`
	Errors             string   `json:"errors"`
	Duration           float64  `json:"duration"`
	ScheduledAt        string   `json:"scheduledAt,omitempty"`
}

// ExecutionList is a page of execution logs.
type ExecutionList struct {
	Total      int         `json:"total"`
	Executions []Execution `json:"executions"`
}

// Variable is an environment variable of a site.
type Variable struct {
	ID           string `json:"$id"`
	CreatedAt    string `json:"$createdAt"`
	UpdatedAt    string `json:"$updatedAt"`
	Key          string `json:"key"`
	Value        string `json:"value"`
	Secret       bool   `json:"secret"`
	ResourceType string `json:"resourceType"`
	ResourceID   string `json:"resourceId"`
}

// VariableList is a page of variables.
type VariableList struct {
	Total     int        `json:"total"`
	Variables []Variable `json:"variables"`
}
