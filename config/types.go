package config

type config struct {
	Server server `yaml:"server" mapstructure:"server"`
	Mysql  mysql  `yaml:"mysql" mapstructure:"mysql"`
	Redis  redis  `yaml:"redis" mapstructure:"redis"`
	Minio  minio  `yaml:"minio" mapstructure:"minio"`
	Jwt    jwt    `yaml:"jwt" mapstructure:"jwt"`
}

type server struct {
	Addr        string   `yaml:"addr"`
	CorsOrigins []string `yaml:"cors_origins" mapstructure:"cors_origins"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type minio struct {
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id" mapstructure:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key" mapstructure:"secret_access_key"`
	UseSSL          bool   `yaml:"use_ssl" mapstructure:"use_ssl"`
	VideoBucket     string `yaml:"video_bucket" mapstructure:"video_bucket"`
	ImageBucket     string `yaml:"image_bucket" mapstructure:"image_bucket"`
	PublicBaseURL   string `yaml:"public_base_url" mapstructure:"public_base_url"`
}

type jwt struct {
	AccessSecret  string `yaml:"access_secret" mapstructure:"access_secret"`
	RefreshSecret string `yaml:"refresh_secret" mapstructure:"refresh_secret"`
}
