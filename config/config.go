package config

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

// Init loads config.yml from a set of candidate paths. Values can be
// overridden with environment variables (e.g. MYSQL_ADDR, REDIS_ADDR).
func Init() {
	viper.SetConfigType("yaml")
	viper.SetConfigName("config.yml")

	configPaths := []string{
		"./config",
		"../config",
		"../../config",
		".",
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Errorf("config file not found: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
	} else {
		logrus.Infof("Successfully read config file: %s", viper.ConfigFileUsed())
	}

	ConfigInfo.Server.Addr = getString("server.addr", "SERVER_ADDR", "0.0.0.0:8000")
	ConfigInfo.Server.CorsOrigins = viper.GetStringSlice("server.cors_origins")

	ConfigInfo.Mysql.Addr = getString("mysql.addr", "MYSQL_ADDR", "localhost:3306")
	ConfigInfo.Mysql.Database = getString("mysql.database", "MYSQL_DATABASE", "vidora")
	ConfigInfo.Mysql.Username = getString("mysql.username", "MYSQL_USERNAME", "root")
	ConfigInfo.Mysql.Password = getString("mysql.password", "MYSQL_PASSWORD", "")
	ConfigInfo.Mysql.Charset = getString("mysql.charset", "MYSQL_CHARSET", "utf8mb4")

	ConfigInfo.Redis.Addr = getString("redis.addr", "REDIS_ADDR", "localhost:6379")
	ConfigInfo.Redis.Password = getString("redis.password", "REDIS_PASSWORD", "")
	ConfigInfo.Redis.DB = viper.GetInt("redis.db")

	ConfigInfo.Minio.Endpoint = getString("minio.endpoint", "MINIO_ENDPOINT", "localhost:9000")
	ConfigInfo.Minio.AccessKeyID = getString("minio.access_key_id", "MINIO_ACCESS_KEY", "minioadmin")
	ConfigInfo.Minio.SecretAccessKey = getString("minio.secret_access_key", "MINIO_SECRET_KEY", "minioadmin")
	ConfigInfo.Minio.UseSSL = viper.GetBool("minio.use_ssl")
	ConfigInfo.Minio.VideoBucket = getString("minio.video_bucket", "MINIO_VIDEO_BUCKET", "videos")
	ConfigInfo.Minio.ImageBucket = getString("minio.image_bucket", "MINIO_IMAGE_BUCKET", "images")
	ConfigInfo.Minio.PublicBaseURL = getString("minio.public_base_url", "MINIO_PUBLIC_BASE_URL", "http://localhost:9000")

	ConfigInfo.Jwt.AccessSecret = getString("jwt.access_secret", "JWT_ACCESS_SECRET", "vidora_access_secret")
	ConfigInfo.Jwt.RefreshSecret = getString("jwt.refresh_secret", "JWT_REFRESH_SECRET", "vidora_refresh_secret")

	logrus.Infof("Config loaded - MySQL: %s@%s/%s, Redis: %s, MinIO: %s",
		ConfigInfo.Mysql.Username, ConfigInfo.Mysql.Addr, ConfigInfo.Mysql.Database,
		ConfigInfo.Redis.Addr, ConfigInfo.Minio.Endpoint)
}

func getString(key, envKey, defaultValue string) string {
	if value := os.Getenv(envKey); value != "" {
		return value
	}
	if value := viper.GetString(key); value != "" {
		return value
	}
	return defaultValue
}
