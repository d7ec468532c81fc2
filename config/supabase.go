package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	supa "github.com/supabase-community/supabase-go"
)

// NewSupabaseClient creates the one Supabase client the application shares.
// It is built at startup and passed to whatever needs the data store.
func NewSupabaseClient(cfg SupabaseConfig, log *logrus.Logger) (*supa.Client, error) {
	url := strings.TrimRight(cfg.URL, "/")

	client, err := supa.NewClient(url, cfg.Key, &supa.ClientOptions{Schema: cfg.Schema})
	if err != nil {
		return nil, fmt.Errorf("error initializing Supabase client: %w", err)
	}

	log.WithFields(logrus.Fields{
		"url":    url,
		"schema": cfg.Schema,
	}).Info("Supabase client initialized successfully.")
	return client, nil
}
