// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config assembles the client configuration.
//
// Sources are merged with mergo, each one overriding the non-zero fields of
// the ones before it: built-in defaults, environment variables, command-line
// flags and finally the JSON file named by -c or CONFIG. The backend address
// and anon key may also come from SUPABASE_URL and SUPABASE_ANON_KEY.
//
// [GetClientConfig] returns the validated view the client is built from.
package config
