// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		SecretKey  string `json:"secret_key"`
		BaseURL    string `json:"base_url"`
		Timezone   string `json:"timezone"`
		AdminToken string `json:"admin_token"`
		LogLevel   string `json:"log_level"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSignKey         string   `json:"token_sign_key"`
		TokenIssuer          string   `json:"token_issuer"`
		AccessTokenDuration  Duration `json:"access_token_duration"`
		RefreshTokenDuration Duration `json:"refresh_token_duration"`
		EmailTokenMaxAge     Duration `json:"email_token_max_age"`
		InsecureCookies      bool     `json:"insecure_cookies"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		CORSOrigins     []string `json:"cors_origins"`
	} `json:"server,omitempty"`

	Mail struct {
		Host            string   `json:"host"`
		Port            int      `json:"port"`
		Username        string   `json:"username"`
		Password        string   `json:"password"`
		Sender          string   `json:"sender"`
		SenderName      string   `json:"sender_name"`
		KotbarAdmins    []string `json:"kotbar_admins"`
		MateriaalAdmins []string `json:"materiaal_admins"`
		AttachmentPath  string   `json:"attachment_path"`
		AttachmentName  string   `json:"attachment_name"`
	} `json:"mail,omitempty"`

	Workers struct {
		MailWorkers   int `json:"mail_workers"`
		MailQueueSize int `json:"mail_queue_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SecretKey:  jsonCfg.App.SecretKey,
			BaseURL:    jsonCfg.App.BaseURL,
			Timezone:   jsonCfg.App.Timezone,
			AdminToken: jsonCfg.App.AdminToken,
			LogLevel:   jsonCfg.App.LogLevel,
		},
		Auth: Auth{
			TokenSignKey:         jsonCfg.Auth.TokenSignKey,
			TokenIssuer:          jsonCfg.Auth.TokenIssuer,
			AccessTokenDuration:  time.Duration(jsonCfg.Auth.AccessTokenDuration),
			RefreshTokenDuration: time.Duration(jsonCfg.Auth.RefreshTokenDuration),
			EmailTokenMaxAge:     time.Duration(jsonCfg.Auth.EmailTokenMaxAge),
			InsecureCookies:      jsonCfg.Auth.InsecureCookies,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			CORSOrigins:     jsonCfg.Server.CORSOrigins,
		},
		Mail: Mail{
			Host:            jsonCfg.Mail.Host,
			Port:            jsonCfg.Mail.Port,
			Username:        jsonCfg.Mail.Username,
			Password:        jsonCfg.Mail.Password,
			Sender:          jsonCfg.Mail.Sender,
			SenderName:      jsonCfg.Mail.SenderName,
			KotbarAdmins:    jsonCfg.Mail.KotbarAdmins,
			MateriaalAdmins: jsonCfg.Mail.MateriaalAdmins,
			AttachmentPath:  jsonCfg.Mail.AttachmentPath,
			AttachmentName:  jsonCfg.Mail.AttachmentName,
		},
		Workers: Workers{
			MailWorkers:   jsonCfg.Workers.MailWorkers,
			MailQueueSize: jsonCfg.Workers.MailQueueSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
