// conf/defaults.go default values for settings
package conf

import (
	"github.com/spf13/viper"
)

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("main.name", "Temple-Go")
	viper.SetDefault("main.log.enabled", true)
	viper.SetDefault("main.log.path", "temple.log")

	viper.SetDefault("ephemeris.tablepath", "")
	viper.SetDefault("ephemeris.windowstart", "1900-01-01")
	viper.SetDefault("ephemeris.windowend", "2100-12-31")

	viper.SetDefault("webserver.enabled", true)
	viper.SetDefault("webserver.port", "8090")
	viper.SetDefault("webserver.log.enabled", true)
	viper.SetDefault("webserver.log.path", "webui.log")

	viper.SetDefault("output.sqlite.enabled", true)
	viper.SetDefault("output.sqlite.path", "temple.db")

	viper.SetDefault("output.mysql.enabled", false)
	viper.SetDefault("output.mysql.username", "temple")
	viper.SetDefault("output.mysql.password", "temple")
	viper.SetDefault("output.mysql.database", "temple")
	viper.SetDefault("output.mysql.host", "localhost")
	viper.SetDefault("output.mysql.port", "3306")
}
