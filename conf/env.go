package conf

// EnvironmentEnum runtime environment selector
type EnvironmentEnum int

const (
	LocalEnvironmentEnum EnvironmentEnum = iota
	DevEnvironmentEnum
	ProdEnvironmentEnum
)

// SystemEnvironmentEnum current environment, set from the -env flag before InitConfig
var SystemEnvironmentEnum = LocalEnvironmentEnum

// GetYaml return the config file path for the current environment
func GetYaml() string {
	switch SystemEnvironmentEnum {
	case DevEnvironmentEnum:
		return "conf/conf_dev.yaml"
	case ProdEnvironmentEnum:
		return "conf/conf_prod.yaml"
	default:
		return "conf/conf_loc.yaml"
	}
}
