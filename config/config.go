// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"gitlab.com/jaxnet/btcrpc/corelog"
	"gitlab.com/jaxnet/btcrpc/network/rpcclient"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFilename = "btcrpc.toml"
	defaultRPCURL         = "http://127.0.0.1:8332"
	defaultNetwork        = "main"
	defaultDebugLevel     = "info"
	defaultTimeout        = 30 * time.Second

	// EnvXPrivRetrievable switches on GetXPriv for clients built from the
	// loaded configuration.
	EnvXPrivRetrievable = "BTCRPC_XPRIV_RETRIEVABLE"
)

var (
	defaultHomeDir    = btcutil.AppDataDir("btcrpc", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultCookieFile = filepath.Join(btcutil.AppDataDir("bitcoin", false), ".cookie")
)

// RPCConfig holds the connection settings of the bitcoind client.
type RPCConfig struct {
	URL        string `yaml:"url" toml:"url" long:"rpcurl" env:"BTCRPC_URL" description:"bitcoind JSON-RPC endpoint"`
	Wallet     string `yaml:"wallet" toml:"wallet" long:"wallet" description:"Wallet name; requests go to /wallet/<name>"`
	User       string `yaml:"user" toml:"user" long:"rpcuser" env:"BTCRPC_USER" description:"Username for RPC connections"`
	Password   string `yaml:"password" toml:"password" long:"rpcpass" env:"BTCRPC_PASS" default-mask:"-" description:"Password for RPC connections"`
	CookieFile string `yaml:"cookie_file" toml:"cookie_file" long:"rpccookie" description:"Read credentials from the bitcoind .cookie file"`

	MaxRetries    int           `yaml:"max_retries" toml:"max_retries" long:"maxretries" description:"Retries of a call after a transient failure"`
	RetryInterval time.Duration `yaml:"retry_interval" toml:"retry_interval" long:"retryinterval" description:"Delay between attempts"`
	Timeout       time.Duration `yaml:"timeout" toml:"timeout" long:"timeout" description:"Limit of a single HTTP attempt"`
	MaxBodySize   int64         `yaml:"max_body_size" toml:"max_body_size" long:"maxbodysize" description:"Maximum response body in bytes"`

	Proxy     string `yaml:"proxy" toml:"proxy" long:"proxy" description:"Connect via SOCKS5 proxy (eg. 127.0.0.1:9050)"`
	ProxyUser string `yaml:"proxy_user" toml:"proxy_user" long:"proxyuser" description:"Username for proxy server"`
	ProxyPass string `yaml:"proxy_pass" toml:"proxy_pass" long:"proxypass" default-mask:"-" description:"Password for proxy server"`

	XPrivRetrievable bool `yaml:"xpriv_retrievable" toml:"xpriv_retrievable" long:"xprivretrievable" env:"BTCRPC_XPRIV_RETRIEVABLE" description:"Allow reading the wallet's extended private key"`
}

// Config defines the configuration options for the client and the tools.
//
// See Load for details on the configuration load process.
type Config struct {
	ConfigFile  string `yaml:"-" toml:"-" short:"C" long:"configfile" description:"Path to configuration file (.toml or .yaml)"`
	ShowVersion bool   `yaml:"-" toml:"-" short:"V" long:"version" description:"Display version information and exit"`

	Network    string `yaml:"network" toml:"network" long:"net" description:"Expected chain: main, test, regtest or signet"`
	DebugLevel string `yaml:"debug_level" toml:"debug_level" short:"d" long:"debuglevel" description:"Logging level for all units {trace, debug, info, warn, error} or <unit>=<level>,... pairs"`

	MetricsAddr string `yaml:"metrics_addr" toml:"metrics_addr" long:"metrics" description:"Serve Prometheus metrics on this address"`

	RPC RPCConfig      `yaml:"rpc" toml:"rpc" group:"RPC Options"`
	Log corelog.Config `yaml:"log" toml:"log" no-flag:"true"`
}

// Default returns a config with sane settings for a local mainnet node.
func Default() Config {
	return Config{
		ConfigFile: defaultConfigFile,
		Network:    defaultNetwork,
		DebugLevel: defaultDebugLevel,
		RPC: RPCConfig{
			URL:           defaultRPCURL,
			MaxRetries:    rpcclient.DefaultMaxRetries,
			RetryInterval: rpcclient.DefaultRetryInterval,
			Timeout:       defaultTimeout,
			MaxBodySize:   rpcclient.DefaultMaxBodySize,
		},
		Log: corelog.Config{}.Default(),
	}
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if path == "" {
		return ""
	}
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// Load initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
// 	1) Start with a default config with sane settings
// 	2) Pre-parse the command line to check for an alternative config file
// 	3) Load configuration file overwriting defaults with any specified options
// 	4) Parse environment and CLI options and overwrite/add any specified options
//
// A missing file at the default location is not an error; a missing file
// that was asked for explicitly is.
func Load(args []string) (*Config, []string, error) {
	cfg := Default()

	// Pre-parse the command line options to see if an alternative config
	// file was specified. Errors aside from help are caught by the final
	// parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag|flags.IgnoreUnknown)
	if _, err := preParser.ParseArgs(args); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil, nil, err
		}
	}

	configFile := cleanAndExpandPath(preCfg.ConfigFile)
	explicit := configFile != cleanAndExpandPath(defaultConfigFile)
	if explicit || fileExists(configFile) {
		if err := loadFile(configFile, &cfg); err != nil {
			return nil, nil, err
		}
	}
	cfg.ConfigFile = configFile

	// Parse environment and command line options again to ensure they take
	// precedence.
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return &cfg, remainingArgs, nil
}

// loadFile decodes the file into cfg, picking the format by extension.
func loadFile(configFile string, cfg *Config) error {
	file, err := os.Open(configFile)
	if err != nil {
		return errors.Wrap(err, "open config file")
	}
	defer file.Close()

	switch ext := strings.ToLower(path.Ext(configFile)); ext {
	case ".yaml", ".yml":
		err = yaml.NewDecoder(file).Decode(cfg)
	case ".toml":
		_, err = toml.NewDecoder(file).Decode(cfg)
	default:
		return errors.Errorf("invalid config file extension %q, must be .toml or .yaml", ext)
	}
	if err != nil {
		return errors.Wrapf(err, "parse config file %s", configFile)
	}
	return nil
}

// Validate checks option combinations that flags and files cannot express.
func (cfg *Config) Validate() error {
	funcName := "Validate"

	if cfg.RPC.URL == "" {
		return fmt.Errorf("%s: rpc url is required", funcName)
	}
	u, err := url.Parse(cfg.RPC.URL)
	if err != nil {
		return fmt.Errorf("%s: invalid rpc url: %v", funcName, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s: rpc url scheme must be http or https, got %q", funcName, u.Scheme)
	}

	if cfg.RPC.CookieFile != "" && cfg.RPC.User != "" {
		return fmt.Errorf("%s: the --rpccookie and --rpcuser options can not be mixed", funcName)
	}
	if cfg.RPC.Password != "" && cfg.RPC.User == "" {
		return fmt.Errorf("%s: --rpcpass requires --rpcuser", funcName)
	}
	if cfg.RPC.ProxyUser != "" && cfg.RPC.Proxy == "" {
		return fmt.Errorf("%s: --proxyuser requires --proxy", funcName)
	}

	if cfg.RPC.MaxRetries < 0 {
		return fmt.Errorf("%s: the maxretries option may not be negative -- parsed [%d]",
			funcName, cfg.RPC.MaxRetries)
	}
	if cfg.RPC.RetryInterval < 0 || cfg.RPC.Timeout < 0 {
		return fmt.Errorf("%s: durations may not be negative", funcName)
	}

	if _, err := cfg.ChainParams(); err != nil {
		return fmt.Errorf("%s: the specified net name [%v] is invalid", funcName, cfg.Network)
	}

	if _, err := parseDebugLevels(cfg.DebugLevel); err != nil {
		return fmt.Errorf("%s: %v", funcName, err)
	}
	return nil
}

// ConnConfig builds the client connection settings. metrics may be nil.
func (cfg *Config) ConnConfig(metrics *rpcclient.Metrics) *rpcclient.ConnConfig {
	endpoint := strings.TrimRight(cfg.RPC.URL, "/")
	if cfg.RPC.Wallet != "" {
		endpoint += "/wallet/" + url.PathEscape(cfg.RPC.Wallet)
	}

	auth := rpcclient.NoAuth()
	switch {
	case cfg.RPC.CookieFile != "":
		auth = rpcclient.CookieFile(cleanAndExpandPath(cfg.RPC.CookieFile))
	case cfg.RPC.User != "":
		auth = rpcclient.UserPass(cfg.RPC.User, cfg.RPC.Password)
	}

	return &rpcclient.ConnConfig{
		URL:              endpoint,
		Auth:             auth,
		MaxRetries:       cfg.RPC.MaxRetries,
		RetryInterval:    cfg.RPC.RetryInterval,
		Timeout:          cfg.RPC.Timeout,
		MaxBodySize:      cfg.RPC.MaxBodySize,
		Proxy:            cfg.RPC.Proxy,
		ProxyUser:        cfg.RPC.ProxyUser,
		ProxyPass:        cfg.RPC.ProxyPass,
		XPrivRetrievable: cfg.RPC.XPrivRetrievable,
		Metrics:          metrics,
	}
}

// DefaultCookieFile is where bitcoind writes its cookie on this platform.
func DefaultCookieFile() string { return defaultCookieFile }
