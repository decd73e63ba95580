package config

const (
	defaultLogFile           = "bookserver.log"
	defaultLogLevel          = "info"
	defaultLogFileMaxSize    = 20
	defaultLogFileMaxBackups = 3
	defaultLogFileMaxAge     = 28
	defaultLogCompress       = false
	defaultPort              = 8080
	defaultHost              = "0.0.0.0"
	defaultCatalog           = "catalog.yaml"
	defaultProvider          = "IA"
	defaultFabricateContent  = false
	defaultStylesheet        = "/static/catalog.css"
	defaultSearchAction      = "/bookserver/catalog/search"
	defaultOpenSearchTimeout = 10
	defaultWorkerPoolSize    = 4
	defaultOutputDir         = "out"
	defaultVersion           = "0.1.0"
)

// Options uses mapstructure tags because viper decodes through mapstructure.
type Options struct {
	// LogFile is the file to write logs to
	LogFile string `mapstructure:"log_file"`
	// LogLevel is the level of logging to show
	LogLevel string `mapstructure:"log_level"`
	// LogFileMaxSize is the maximum size in megabytes of the log file before it is rotated
	LogFileMaxSize int `mapstructure:"log_file_max_size"`
	// LogFileMaxBackups is the maximum number of log files to keep
	LogFileMaxBackups int `mapstructure:"log_file_max_backups"`
	// LogFileMaxAge is the maximum number of days to keep a log file
	LogFileMaxAge int `mapstructure:"log_file_max_age"`
	// LogCompress is whether or not to compress the rotated log files
	LogCompress bool `mapstructure:"log_compress"`
	// Port is the port to listen on
	Port int `mapstructure:"port"`
	// Host is the host to listen on
	Host string `mapstructure:"host"`
	// Catalog is the catalog file served by the HTTP server
	Catalog string `mapstructure:"catalog"`
	// Provider labels every document of a Solr batch
	Provider string `mapstructure:"provider"`
	// FabricateContent asks the Atom renderer to synthesise a content blurb
	FabricateContent bool   `mapstructure:"fabricate_content"`
	Stylesheet       string `mapstructure:"stylesheet"`
	SearchAction     string `mapstructure:"search_action"`
	// OpenSearchTimeout is the OpenSearch description fetch timeout, in seconds
	OpenSearchTimeout int    `mapstructure:"opensearch_timeout"`
	WorkerPoolSize    int    `mapstructure:"worker_pool_size"`
	OutputDir         string `mapstructure:"output_dir"`
	Version           string `mapstructure:"version"`
}

func GetDefaultOptions() *Options {
	Opts = &Options{
		LogFile:           defaultLogFile,
		LogLevel:          defaultLogLevel,
		LogFileMaxSize:    defaultLogFileMaxSize,
		LogFileMaxBackups: defaultLogFileMaxBackups,
		LogFileMaxAge:     defaultLogFileMaxAge,
		LogCompress:       defaultLogCompress,
		Port:              defaultPort,
		Host:              defaultHost,
		Catalog:           defaultCatalog,
		Provider:          defaultProvider,
		FabricateContent:  defaultFabricateContent,
		Stylesheet:        defaultStylesheet,
		SearchAction:      defaultSearchAction,
		OpenSearchTimeout: defaultOpenSearchTimeout,
		WorkerPoolSize:    defaultWorkerPoolSize,
		OutputDir:         defaultOutputDir,
		Version:           defaultVersion,
	}
	return Opts
}
