package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"store": map[string]any{
			"pollInterval":    "2s",
			"assetCollection": "patrimonio",
		},
		"identity": map[string]any{
			"jwtSecret": "",
		},
		"blob": map[string]any{
			"publicBaseUrl": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORE_POLLINTERVAL", want: "store.pollInterval"},
		{envKey: "STORE_ASSETCOLLECTION", want: "store.assetCollection"},
		{envKey: "IDENTITY_JWTSECRET", want: "identity.jwtSecret"},
		{envKey: "BLOB_PUBLICBASEURL", want: "blob.publicBaseUrl"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, "patrimonio", cfg.Store.AssetCollection)
	assert.Equal(t, "historico", cfg.Store.HistoryCollection)
	assert.Equal(t, "users", cfg.Store.UserCollection)
	assert.Equal(t, "DESCRICAO", cfg.Store.OrderField)
	assert.Equal(t, 2*time.Second, cfg.Store.PollInterval)
	assert.Equal(t, "mem://", cfg.Blob.URL)
	assert.Equal(t, "patrimonio_images", cfg.Blob.ImagePrefix)
	assert.Equal(t, "/images", cfg.Blob.PublicBaseURL)
	assert.Equal(t, "patrimonio.xlsx", cfg.Export.FileName)
	assert.Equal(t, "Patrimonio", cfg.Export.SheetName)
	assert.Equal(t, IdentityProviderJWT, cfg.Identity.Provider)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:    "jwt provider without secret",
			mutate:  func(cfg *Config) {},
			wantErr: "identity.jwtSecret is required",
		},
		{
			name: "firestore without firebase config",
			mutate: func(cfg *Config) {
				cfg.Identity.JWTSecret = "secret"
				cfg.Store.Driver = StoreDriverFirestore
			},
			wantErr: "firebase config is required for the firestore store driver",
		},
		{
			name: "postgres without postgres config",
			mutate: func(cfg *Config) {
				cfg.Identity.JWTSecret = "secret"
				cfg.Store.Driver = StoreDriverPostgres
			},
			wantErr: "postgres config is required",
		},
		{
			name: "mongo without database",
			mutate: func(cfg *Config) {
				cfg.Identity.JWTSecret = "secret"
				cfg.Store.Driver = StoreDriverMongo
				cfg.Mongo = &MongoConfig{URI: "mongodb://localhost:27017"}
			},
			wantErr: "mongo.uri and mongo.database are required",
		},
		{
			name: "unknown driver",
			mutate: func(cfg *Config) {
				cfg.Identity.JWTSecret = "secret"
				cfg.Store.Driver = "cassandra"
			},
			wantErr: "unknown store driver: cassandra",
		},
		{
			name: "memory store with jwt secret",
			mutate: func(cfg *Config) {
				cfg.Identity.JWTSecret = "secret"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
