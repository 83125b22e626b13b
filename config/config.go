package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "8MB"

	defaultAssetCollection   = "patrimonio"
	defaultHistoryCollection = "historico"
	defaultUserCollection    = "users"
	defaultOrderField        = "DESCRICAO"
	defaultPollInterval      = 2 * time.Second

	defaultImagePrefix    = "patrimonio_images"
	defaultPublicImageURL = "/images"

	defaultExportFileName  = "patrimonio.xlsx"
	defaultExportSheetName = "Patrimonio"
)

// Store drivers.
const (
	StoreDriverFirestore = "firestore"
	StoreDriverPostgres  = "postgres"
	StoreDriverMongo     = "mongo"
	StoreDriverMemory    = "memory"
)

// Identity providers.
const (
	IdentityProviderFirebase = "firebase"
	IdentityProviderJWT      = "jwt"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// AllowedOrigins limits CORS and WebSocket upgrades; empty allows any origin.
		AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Store StoreConfig `json:"store" yaml:"store"`

	// Postgres is only required when store.driver is "postgres".
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Mongo is only required when store.driver is "mongo".
	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	// Firebase configuration shared by the Firestore driver and the Firebase identity provider
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Identity IdentityConfig `json:"identity" yaml:"identity"`

	Blob BlobConfig `json:"blob" yaml:"blob"`

	// QRCode configuration for asset labels
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for asset event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Export ExportConfig `json:"export" yaml:"export"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig selects the record store driver and names the remote collections.
type StoreConfig struct {
	Driver            string        `json:"driver" yaml:"driver"`
	AssetCollection   string        `json:"assetCollection" yaml:"assetCollection"`
	HistoryCollection string        `json:"historyCollection" yaml:"historyCollection"`
	UserCollection    string        `json:"userCollection" yaml:"userCollection"`
	OrderField        string        `json:"orderField" yaml:"orderField"`
	PollInterval      time.Duration `json:"pollInterval" yaml:"pollInterval"`
}

// MongoConfig defines the MongoDB connection used by the mongo store driver
type MongoConfig struct {
	URI            string        `json:"uri" yaml:"uri"`
	Database       string        `json:"database" yaml:"database"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
}

// FirebaseConfig defines the Firebase Admin SDK configuration
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	StorageBucket   string `json:"storageBucket" yaml:"storageBucket"`
}

// IdentityConfig selects how bearer tokens are verified
type IdentityConfig struct {
	Provider  string `json:"provider" yaml:"provider"`
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`
	Issuer    string `json:"issuer" yaml:"issuer"`
}

// BlobConfig defines where asset images are stored.
// URL is a gocloud.dev bucket URL such as mem://, file:///var/lib/locus or gs://bucket.
// PublicBaseURL prefixes object paths in stored image URLs; it defaults to the
// API's own /images route.
type BlobConfig struct {
	URL           string `json:"url" yaml:"url"`
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	ImagePrefix   string `json:"imagePrefix" yaml:"imagePrefix"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// ExportConfig names the spreadsheet produced by the export operation
type ExportConfig struct {
	FileName  string `json:"fileName" yaml:"fileName"`
	SheetName string `json:"sheetName" yaml:"sheetName"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// STORE_POLLINTERVAL -> store.pollInterval
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A local .env file is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Store.Driver == "" {
		c.Store.Driver = StoreDriverMemory
	}
	if c.Store.AssetCollection == "" {
		c.Store.AssetCollection = defaultAssetCollection
	}
	if c.Store.HistoryCollection == "" {
		c.Store.HistoryCollection = defaultHistoryCollection
	}
	if c.Store.UserCollection == "" {
		c.Store.UserCollection = defaultUserCollection
	}
	if c.Store.OrderField == "" {
		c.Store.OrderField = defaultOrderField
	}
	if c.Store.PollInterval <= 0 {
		c.Store.PollInterval = defaultPollInterval
	}

	if c.Identity.Provider == "" {
		c.Identity.Provider = IdentityProviderJWT
	}

	if c.Blob.URL == "" {
		c.Blob.URL = "mem://"
	}
	if c.Blob.ImagePrefix == "" {
		c.Blob.ImagePrefix = defaultImagePrefix
	}
	if c.Blob.PublicBaseURL == "" {
		c.Blob.PublicBaseURL = defaultPublicImageURL
	}

	if c.Export.FileName == "" {
		c.Export.FileName = defaultExportFileName
	}
	if c.Export.SheetName == "" {
		c.Export.SheetName = defaultExportSheetName
	}
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverMemory:
	case StoreDriverFirestore:
		if c.Firebase == nil {
			return errors.New("firebase config is required for the firestore store driver")
		}
	case StoreDriverPostgres:
		if c.Postgres == nil {
			return errors.New("postgres config is required for the postgres store driver")
		}
	case StoreDriverMongo:
		if c.Mongo == nil || c.Mongo.URI == "" || c.Mongo.Database == "" {
			return errors.New("mongo.uri and mongo.database are required for the mongo store driver")
		}
	default:
		return errors.Errorf("unknown store driver: %s", c.Store.Driver)
	}

	switch c.Identity.Provider {
	case IdentityProviderFirebase:
		if c.Firebase == nil {
			return errors.New("firebase config is required for the firebase identity provider")
		}
	case IdentityProviderJWT:
		if c.Identity.JWTSecret == "" {
			return errors.New("identity.jwtSecret is required for the jwt identity provider")
		}
	default:
		return errors.Errorf("unknown identity provider: %s", c.Identity.Provider)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
