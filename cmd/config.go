package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"codeguard.dev/pkg/codeguard/internal/adapter"
	"codeguard.dev/pkg/codeguard/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "codeguard"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	excludeFlagName     = "exclude"
	includeFlagName     = "include"
	maxFileSizeFlagName = "max-file-size"
	depthFlagName       = "depth"
	concurrencyFlagName = "concurrency"
	formatFlagName      = "format"
	failOnFlagName      = "fail-on"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"
	domainFlagName      = "domain"
	contextFlagName     = "context"
	debounceFlagName    = "debounce"

	excludeConfigKey     = "scan.exclude"
	includeConfigKey     = "scan.include"
	maxFileSizeConfigKey = "scan.max_file_size"
	depthConfigKey       = "scan.depth"
	concurrencyConfigKey = "scan.concurrency"
	batchSizeConfigKey   = "scan.batch_size"
	yieldConfigKey       = "scan.yield"
	autoScanConfigKey    = "scan.auto_scan"
	scanOnSaveConfigKey  = "scan.scan_on_save"
	formatConfigKey      = "output.format"
	failOnConfigKey      = "fail_on"
	domainConfigKey      = "check.domain"
	contextConfigKey     = "check.context"
	debounceConfigKey    = "watch.debounce"

	formatTable = "table"
	formatYAML  = "yaml"

	defaultFormat     = formatTable
	defaultFailOn     = "none"
	defaultAutoScan   = true
	defaultScanOnSave = true

	envPrefix = "CODEGUARD"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".codeguard.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)

	// Scan defaults mirror the orchestrator defaults so `codeguard init`
	// writes an explicit, editable configuration.
	viper.SetDefault(includeConfigKey, domain.DefaultIncludePatterns)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(maxFileSizeConfigKey, int64(domain.DefaultMaxFileSize))
	viper.SetDefault(depthConfigKey, 0)
	viper.SetDefault(concurrencyConfigKey, domain.DefaultFolderConcurrency)
	viper.SetDefault(batchSizeConfigKey, domain.DefaultBatchSize)
	viper.SetDefault(yieldConfigKey, domain.DefaultYield)
	viper.SetDefault(autoScanConfigKey, defaultAutoScan)
	viper.SetDefault(scanOnSaveConfigKey, defaultScanOnSave)
	viper.SetDefault(formatConfigKey, defaultFormat)
	viper.SetDefault(failOnConfigKey, defaultFailOn)
	viper.SetDefault(domainConfigKey, []string{})
	viper.SetDefault(contextConfigKey, "")
	viper.SetDefault(debounceConfigKey, adapter.DefaultDebounce)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
