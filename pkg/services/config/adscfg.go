package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// Credentials holds the API endpoint and access token for one ad account
// profile.
type Credentials struct {
	Host        string
	AccessToken string
	AccountID   string
}

// Registry resolves ad account profiles from an .adpulsecfg ini file, one
// section per account.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetCredentials(ctx context.Context, profile string) (*Credentials, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetCredentials(_ context.Context, profile string) (*Credentials, error) {
	if !cr.cfg.HasSection(profile) {
		return nil, fmt.Errorf("profile %s not found", profile)
	}
	section := cr.cfg.Section(profile)

	creds := &Credentials{
		Host:        section.Key("host").String(),
		AccessToken: section.Key("access_token").String(),
		AccountID:   section.Key("account_id").String(),
	}
	if creds.Host == "" || creds.AccessToken == "" {
		return nil, fmt.Errorf("profile %s is missing host or access_token", profile)
	}
	return creds, nil
}
