// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: December 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

// Defaults returns a fully-populated configuration carrying every default
// value. The TOML file is decoded on top of it, so absent keys keep these.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			LogLevel: "error",
		},
		Channel: ChannelConfig{
			Inet:       "[::1]:1491",
			TCPTimeout: 300,
			Search: ChannelSearchConfig{
				QueryLimitDefault:   10,
				QueryLimitMaximum:   100,
				QueryAlternatesTry:  4,
				SuggestLimitDefault: 5,
				SuggestLimitMaximum: 20,
				ListLimitDefault:    100,
				ListLimitMaximum:    500,
				CommandPoolSize:     10,
			},
		},
		Store: StoreConfig{
			KV: StoreKVConfig{
				Path:              "./data/store/kv/",
				RetainWordObjects: 1000,
				Pool: StorePoolConfig{
					InactiveAfter: 1800,
				},
				Database: StoreKVDatabaseConfig{
					FlushAfter:     900,
					Compress:       true,
					Parallelism:    2,
					MaxCompactions: 1,
					MaxFlushes:     1,
					WriteBuffer:    16384,
					WriteAheadLog:  true,
				},
			},
			FST: StoreFSTConfig{
				Path: "./data/store/fst/",
				Pool: StorePoolConfig{
					InactiveAfter: 300,
				},
				Graph: StoreFSTGraphConfig{
					ConsolidateAfter: 180,
					MaxSize:          2048,
					MaxWords:         250000,
				},
			},
		},
	}
}
