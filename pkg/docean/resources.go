package docean

// Droplet represents a DigitalOcean virtual machine instance.
type Droplet struct {
	ID          int       `json:"id"                     yaml:"id"`
	Name        string    `json:"name"                   yaml:"name"`
	Memory      int       `json:"memory"                 yaml:"memory"`
	VCPUs       int       `json:"vcpus"                  yaml:"vcpus"`
	Disk        int       `json:"disk"                   yaml:"disk"`
	Locked      bool      `json:"locked"                 yaml:"locked"`
	Status      string    `json:"status"                 yaml:"status"`
	Kernel      *Kernel   `json:"kernel,omitempty"       yaml:"kernel,omitempty"`
	CreatedAt   string    `json:"created_at"             yaml:"created_at"`
	Features    []string  `json:"features,omitempty"     yaml:"features,omitempty"`
	BackupIDs   []int     `json:"backup_ids,omitempty"   yaml:"backup_ids,omitempty"`
	SnapshotIDs []int     `json:"snapshot_ids,omitempty" yaml:"snapshot_ids,omitempty"`
	Image       *Image    `json:"image,omitempty"        yaml:"image,omitempty"`
	Size        *Size     `json:"size,omitempty"         yaml:"size,omitempty"`
	SizeSlug    string    `json:"size_slug"              yaml:"size_slug"`
	Networks    *Networks `json:"networks,omitempty"     yaml:"networks,omitempty"`
	Region      *Region   `json:"region,omitempty"       yaml:"region,omitempty"`
	Tags        []string  `json:"tags,omitempty"         yaml:"tags,omitempty"`
	VolumeIDs   []string  `json:"volume_ids,omitempty"   yaml:"volume_ids,omitempty"`
	VPCUUID     string    `json:"vpc_uuid,omitempty"     yaml:"vpc_uuid,omitempty"`
}

// DropletCreateRequest represents a request to create a droplet.
type DropletCreateRequest struct {
	// Name is the droplet's hostname (required).
	Name string `json:"name" yaml:"name"`
	// Region is the slug of the region to deploy in (required).
	Region string `json:"region" yaml:"region"`
	// Size is the slug of the droplet size (required).
	Size string `json:"size" yaml:"size"`
	// Image is the slug or ID of the base image (required).
	Image string `json:"image" yaml:"image"`
	// SSHKeys lists key IDs or fingerprints to embed in the droplet.
	SSHKeys []string `json:"ssh_keys,omitempty" yaml:"ssh_keys,omitempty"`
	// Backups enables automated backups.
	Backups bool `json:"backups,omitempty" yaml:"backups,omitempty"`
	// IPv6 enables IPv6 networking.
	IPv6 bool `json:"ipv6,omitempty" yaml:"ipv6,omitempty"`
	// Monitoring installs the metrics agent.
	Monitoring bool `json:"monitoring,omitempty" yaml:"monitoring,omitempty"`
	// UserData is a cloud-init script executed on first boot.
	UserData string `json:"user_data,omitempty" yaml:"user_data,omitempty"`
	// Tags are applied to the droplet on creation.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	// VPCUUID places the droplet into a specific VPC; empty means the
	// region's default VPC.
	VPCUUID string `json:"vpc_uuid,omitempty" yaml:"vpc_uuid,omitempty"`
	// Volumes lists block storage volume IDs to attach.
	Volumes []string `json:"volumes,omitempty" yaml:"volumes,omitempty"`
}

// DropletMultiCreateRequest represents a request to create several droplets
// in one call. The API fans Names out into one droplet per entry; all other
// fields are shared.
type DropletMultiCreateRequest struct {
	Names      []string `json:"names"                yaml:"names"`
	Region     string   `json:"region"               yaml:"region"`
	Size       string   `json:"size"                 yaml:"size"`
	Image      string   `json:"image"                yaml:"image"`
	SSHKeys    []string `json:"ssh_keys,omitempty"   yaml:"ssh_keys,omitempty"`
	Backups    bool     `json:"backups,omitempty"    yaml:"backups,omitempty"`
	IPv6       bool     `json:"ipv6,omitempty"       yaml:"ipv6,omitempty"`
	Monitoring bool     `json:"monitoring,omitempty" yaml:"monitoring,omitempty"`
	UserData   string   `json:"user_data,omitempty"  yaml:"user_data,omitempty"`
	Tags       []string `json:"tags,omitempty"       yaml:"tags,omitempty"`
	VPCUUID    string   `json:"vpc_uuid,omitempty"   yaml:"vpc_uuid,omitempty"`
}

// Kernel represents a kernel available to a droplet.
type Kernel struct {
	ID      int    `json:"id"      yaml:"id"`
	Name    string `json:"name"    yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// Image represents a base image, droplet snapshot, or backup. Droplet
// snapshots and backups are images with integer IDs; the top-level snapshots
// endpoint uses the separate Snapshot type with string IDs.
type Image struct {
	ID            int      `json:"id"                       yaml:"id"`
	Name          string   `json:"name"                     yaml:"name"`
	Type          string   `json:"type,omitempty"           yaml:"type,omitempty"`
	Distribution  string   `json:"distribution,omitempty"   yaml:"distribution,omitempty"`
	Slug          string   `json:"slug,omitempty"           yaml:"slug,omitempty"`
	Public        bool     `json:"public"                   yaml:"public"`
	Regions       []string `json:"regions,omitempty"        yaml:"regions,omitempty"`
	MinDiskSize   int      `json:"min_disk_size,omitempty"  yaml:"min_disk_size,omitempty"`
	SizeGigabytes float64  `json:"size_gigabytes,omitempty" yaml:"size_gigabytes,omitempty"`
	CreatedAt     string   `json:"created_at,omitempty"     yaml:"created_at,omitempty"`
}

// Snapshot represents a top-level snapshot record.
type Snapshot struct {
	ID            string   `json:"id"             yaml:"id"`
	Name          string   `json:"name"           yaml:"name"`
	ResourceID    string   `json:"resource_id"    yaml:"resource_id"`
	ResourceType  string   `json:"resource_type"  yaml:"resource_type"`
	Regions       []string `json:"regions"        yaml:"regions"`
	MinDiskSize   int      `json:"min_disk_size"  yaml:"min_disk_size"`
	SizeGigabytes float64  `json:"size_gigabytes" yaml:"size_gigabytes"`
	CreatedAt     string   `json:"created_at"     yaml:"created_at"`
	Tags          []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Action represents an event record for an operation performed against a
// resource. Actions are read-only in this client.
type Action struct {
	ID           int     `json:"id"                     yaml:"id"`
	Status       string  `json:"status"                 yaml:"status"`
	Type         string  `json:"type"                   yaml:"type"`
	StartedAt    string  `json:"started_at"             yaml:"started_at"`
	CompletedAt  string  `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
	ResourceID   int     `json:"resource_id"            yaml:"resource_id"`
	ResourceType string  `json:"resource_type"          yaml:"resource_type"`
	Region       *Region `json:"region,omitempty"       yaml:"region,omitempty"`
	RegionSlug   string  `json:"region_slug,omitempty"  yaml:"region_slug,omitempty"`
}

// Account represents the account associated with the current credentials.
type Account struct {
	DropletLimit    int    `json:"droplet_limit"            yaml:"droplet_limit"`
	FloatingIPLimit int    `json:"floating_ip_limit"        yaml:"floating_ip_limit"`
	VolumeLimit     int    `json:"volume_limit"             yaml:"volume_limit"`
	Email           string `json:"email"                    yaml:"email"`
	Name            string `json:"name,omitempty"           yaml:"name,omitempty"`
	UUID            string `json:"uuid"                     yaml:"uuid"`
	EmailVerified   bool   `json:"email_verified"           yaml:"email_verified"`
	Status          string `json:"status"                   yaml:"status"`
	StatusMessage   string `json:"status_message,omitempty" yaml:"status_message,omitempty"`
	Team            *Team  `json:"team,omitempty"           yaml:"team,omitempty"`
}

// Team identifies the team context of an account.
type Team struct {
	UUID string `json:"uuid" yaml:"uuid"`
	Name string `json:"name" yaml:"name"`
}

// Region represents a datacenter region.
type Region struct {
	Name      string   `json:"name"               yaml:"name"`
	Slug      string   `json:"slug"               yaml:"slug"`
	Features  []string `json:"features,omitempty" yaml:"features,omitempty"`
	Available bool     `json:"available"          yaml:"available"`
	Sizes     []string `json:"sizes,omitempty"    yaml:"sizes,omitempty"`
}

// Size represents a droplet size.
type Size struct {
	Slug         string   `json:"slug"                  yaml:"slug"`
	Memory       int      `json:"memory"                yaml:"memory"`
	VCPUs        int      `json:"vcpus"                 yaml:"vcpus"`
	Disk         int      `json:"disk"                  yaml:"disk"`
	Transfer     float64  `json:"transfer"              yaml:"transfer"`
	PriceMonthly float64  `json:"price_monthly"         yaml:"price_monthly"`
	PriceHourly  float64  `json:"price_hourly"          yaml:"price_hourly"`
	Regions      []string `json:"regions,omitempty"     yaml:"regions,omitempty"`
	Available    bool     `json:"available"             yaml:"available"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// Networks groups a droplet's network interfaces.
type Networks struct {
	V4 []NetworkV4 `json:"v4,omitempty" yaml:"v4,omitempty"`
	V6 []NetworkV6 `json:"v6,omitempty" yaml:"v6,omitempty"`
}

// NetworkV4 represents an IPv4 interface.
type NetworkV4 struct {
	IPAddress string `json:"ip_address" yaml:"ip_address"`
	Netmask   string `json:"netmask"    yaml:"netmask"`
	Gateway   string `json:"gateway"    yaml:"gateway"`
	Type      string `json:"type"       yaml:"type"`
}

// NetworkV6 represents an IPv6 interface.
type NetworkV6 struct {
	IPAddress string `json:"ip_address" yaml:"ip_address"`
	Netmask   int    `json:"netmask"    yaml:"netmask"`
	Gateway   string `json:"gateway"    yaml:"gateway"`
	Type      string `json:"type"       yaml:"type"`
}

// App represents an App Platform deployment.
type App struct {
	ID                   string         `json:"id"                               yaml:"id"`
	OwnerUUID            string         `json:"owner_uuid,omitempty"             yaml:"owner_uuid,omitempty"`
	Spec                 *AppSpec       `json:"spec"                             yaml:"spec"`
	DefaultIngress       string         `json:"default_ingress,omitempty"        yaml:"default_ingress,omitempty"`
	LiveURL              string         `json:"live_url,omitempty"               yaml:"live_url,omitempty"`
	ActiveDeployment     *AppDeployment `json:"active_deployment,omitempty"      yaml:"active_deployment,omitempty"`
	InProgressDeployment *AppDeployment `json:"in_progress_deployment,omitempty" yaml:"in_progress_deployment,omitempty"`
	TierSlug             string         `json:"tier_slug,omitempty"              yaml:"tier_slug,omitempty"`
	Region               *AppRegion     `json:"region,omitempty"                 yaml:"region,omitempty"`
	CreatedAt            string         `json:"created_at,omitempty"             yaml:"created_at,omitempty"`
	UpdatedAt            string         `json:"updated_at,omitempty"             yaml:"updated_at,omitempty"`
}

/// AppSpec declares the desired state of an app: its components and where
// they run. Every component list is optional.
type AppSpec struct {
	Name        string              `json:"name"                   yaml:"name"`
	Region      string              `json:"region,omitempty"       yaml:"region,omitempty"`
	Domains     []AppDomainSpec     `json:"domains,omitempty"      yaml:"domains,omitempty"`
	Services    []AppServiceSpec    `json:"services,omitempty"     yaml:"services,omitempty"`
	Workers     []AppWorkerSpec     `json:"workers,omitempty"      yaml:"workers,omitempty"`
	StaticSites []AppStaticSiteSpec `json:"static_sites,omitempty" yaml:"static_sites,omitempty"`
	Functions   []AppFunctionsSpec  `json:"functions,omitempty"    yaml:"functions,omitempty"`
}

// AppDomainSpec declares a custom domain for an app.
type AppDomainSpec struct {
	Domain   string `json:"domain"             yaml:"domain"`
	Type     string `json:"type,omitempty"     yaml:"type,omitempty"`
	Wildcard bool   `json:"wildcard,omitempty" yaml:"wildcard,omitempty"`
	Zone     string `json:"zone,omitempty"     yaml:"zone,omitempty"`
}

// AppServiceSpec declares an HTTP-serving component.
type AppServiceSpec struct {
	Name             string         `json:"name"                         yaml:"name"`
	Image            *AppImageSpec  `json:"image,omitempty"              yaml:"image,omitempty"`
	Git              *AppGitSpec    `json:"git,omitempty"                yaml:"git,omitempty"`
	GitHub           *AppGitHubSpec `json:"github,omitempty"             yaml:"github,omitempty"`
	DockerfilePath   string         `json:"dockerfile_path,omitempty"    yaml:"dockerfile_path,omitempty"`
	BuildCommand     string         `json:"build_command,omitempty"      yaml:"build_command,omitempty"`
	RunCommand       string         `json:"run_command,omitempty"        yaml:"run_command,omitempty"`
	SourceDir        string         `json:"source_dir,omitempty"         yaml:"source_dir,omitempty"`
	EnvironmentSlug  string         `json:"environment_slug,omitempty"   yaml:"environment_slug,omitempty"`
	Envs             []AppEnvVar    `json:"envs,omitempty"               yaml:"envs,omitempty"`
	InstanceSizeSlug string         `json:"instance_size_slug,omitempty" yaml:"instance_size_slug,omitempty"`
	InstanceCount    int            `json:"instance_count,omitempty"     yaml:"instance_count,omitempty"`
	HTTPPort         int            `json:"http_port,omitempty"          yaml:"http_port,omitempty"`
}

// AppWorkerSpec declares a background component.
type AppWorkerSpec struct {
	Name             string         `json:"name"                         yaml:"name"`
	Image            *AppImageSpec  `json:"image,omitempty"              yaml:"image,omitempty"`
	Git              *AppGitSpec    `json:"git,omitempty"                yaml:"git,omitempty"`
	GitHub           *AppGitHubSpec `json:"github,omitempty"             yaml:"github,omitempty"`
	BuildCommand     string         `json:"build_command,omitempty"      yaml:"build_command,omitempty"`
	RunCommand       string         `json:"run_command,omitempty"        yaml:"run_command,omitempty"`
	SourceDir        string         `json:"source_dir,omitempty"         yaml:"source_dir,omitempty"`
	EnvironmentSlug  string         `json:"environment_slug,omitempty"   yaml:"environment_slug,omitempty"`
	Envs             []AppEnvVar    `json:"envs,omitempty"               yaml:"envs,omitempty"`
	InstanceSizeSlug string         `json:"instance_size_slug,omitempty" yaml:"instance_size_slug,omitempty"`
	InstanceCount    int            `json:"instance_count,omitempty"     yaml:"instance_count,omitempty"`
}

// AppStaticSiteSpec declares a static site component.
type AppStaticSiteSpec struct {
	Name            string         `json:"name"                       yaml:"name"`
	Git             *AppGitSpec    `json:"git,omitempty"              yaml:"git,omitempty"`
	GitHub          *AppGitHubSpec `json:"github,omitempty"           yaml:"github,omitempty"`
	BuildCommand    string         `json:"build_command,omitempty"    yaml:"build_command,omitempty"`
	SourceDir       string         `json:"source_dir,omitempty"       yaml:"source_dir,omitempty"`
	OutputDir       string         `json:"output_dir,omitempty"       yaml:"output_dir,omitempty"`
	IndexDocument   string         `json:"index_document,omitempty"   yaml:"index_document,omitempty"`
	ErrorDocument   string         `json:"error_document,omitempty"   yaml:"error_document,omitempty"`
	EnvironmentSlug string         `json:"environment_slug,omitempty" yaml:"environment_slug,omitempty"`
	Envs            []AppEnvVar    `json:"envs,omitempty"             yaml:"envs,omitempty"`
}

// AppFunctionsSpec declares a serverless functions component.
type AppFunctionsSpec struct {
	Name      string         `json:"name"                 yaml:"name"`
	Git       *AppGitSpec    `json:"git,omitempty"        yaml:"git,omitempty"`
	GitHub    *AppGitHubSpec `json:"github,omitempty"     yaml:"github,omitempty"`
	SourceDir string         `json:"source_dir,omitempty" yaml:"source_dir,omitempty"`
	Envs      []AppEnvVar    `json:"envs,omitempty"       yaml:"envs,omitempty"`
}

// AppImageSpec points a component at a container registry image.
type AppImageSpec struct {
	RegistryType string `json:"registry_type,omitempty" yaml:"registry_type,omitempty"`
	Registry     string `json:"registry,omitempty"      yaml:"registry,omitempty"`
	Repository   string `json:"repository"              yaml:"repository"`
	Tag          string `json:"tag,omitempty"           yaml:"tag,omitempty"`
}

// AppGitSpec points a component at a plain git repository.
type AppGitSpec struct {
	RepoCloneURL string `json:"repo_clone_url" yaml:"repo_clone_url"`
	Branch       string `json:"branch"         yaml:"branch"`
}

// AppGitHubSpec points a component at a GitHub repository.
type AppGitHubSpec struct {
	Repo         string `json:"repo"                     yaml:"repo"`
	Branch       string `json:"branch"                   yaml:"branch"`
	DeployOnPush bool   `json:"deploy_on_push,omitempty" yaml:"deploy_on_push,omitempty"`
}

// AppEnvVar declares an environment variable on a component.
type AppEnvVar struct {
	Key   string `json:"key"             yaml:"key"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	Scope string `json:"scope,omitempty" yaml:"scope,omitempty"`
	Type  string `json:"type,omitempty"  yaml:"type,omitempty"`
}

// AppDeployment summarizes a deployment of an app.
type AppDeployment struct {
	ID        string `json:"id"                   yaml:"id"`
	Phase     string `json:"phase,omitempty"      yaml:"phase,omitempty"`
	Cause     string `json:"cause,omitempty"      yaml:"cause,omitempty"`
	CreatedAt string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// AppRegion describes the region an app is served from.
type AppRegion struct {
	Slug        string   `json:"slug"                   yaml:"slug"`
	Label       string   `json:"label,omitempty"        yaml:"label,omitempty"`
	Flag        string   `json:"flag,omitempty"         yaml:"flag,omitempty"`
	Continent   string   `json:"continent,omitempty"    yaml:"continent,omitempty"`
	DataCenters []string `json:"data_centers,omitempty" yaml:"data_centers,omitempty"`
	Default     bool     `json:"default,omitempty"      yaml:"default,omitempty"`
}

// AppCreateRequest represents a request to create an app.
type AppCreateRequest struct {
	// Spec is the full desired state of the app (required).
	Spec *AppSpec `json:"spec" yaml:"spec"`
}

// AppUpdateRequest represents a request to update an app. The API replaces
// the entire spec; there is no partial merge.
type AppUpdateRequest struct {
	Spec *AppSpec `json:"spec" yaml:"spec"`
}
