package account

import (
	"context"

	"github.com/ad-tools/ad-pulse/pkg/models/domain"
	"github.com/ad-tools/ad-pulse/pkg/services/config"
)

type Explorer interface {
	ListAccounts(ctx context.Context) ([]domain.AdAccount, error)
}

type accountExplorer struct {
	registry config.Registry
}

func NewExplorer(registry config.Registry) Explorer {
	return &accountExplorer{registry: registry}
}

func (a *accountExplorer) ListAccounts(ctx context.Context) ([]domain.AdAccount, error) {
	profiles, err := a.registry.GetProfiles(ctx)
	if err != nil {
		return nil, err
	}
	var accounts []domain.AdAccount
	for _, profile := range profiles {
		accounts = append(accounts, domain.AdAccount{Name: profile})
	}
	return accounts, nil
}
