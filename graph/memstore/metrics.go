// Copyright 2026 The Cayley Authors. All rights reserved.
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

package memstore

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mStatementsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rdfstore_memstore_statements_added",
		Help: "Number of statements inserted.",
	})
	mStatementsDup = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rdfstore_memstore_statements_dup",
		Help: "Number of inserts skipped because an equal statement was present.",
	})
	mStatementsRemoved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rdfstore_memstore_statements_removed",
		Help: "Number of statements removed.",
	})
	mStatementsInvalid = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rdfstore_memstore_statements_invalid",
		Help: "Number of statements rejected as invalid.",
	})

	mNodesNew = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rdfstore_memstore_nodes_new_count",
		Help: "Number new nodes created.",
	})
	mNodesDel = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rdfstore_memstore_nodes_del_count",
		Help: "Number of node deleted.",
	})

	mMatchCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rdfstore_memstore_match_count",
		Help: "Number of Match calls by the index used to answer them.",
	}, []string{"index"})
	mMatchResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "rdfstore_memstore_match_results",
		Help:    "Number of statements returned by Match.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	mRenames = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rdfstore_memstore_rename_count",
		Help: "Number of RenameResource calls.",
	})
	mCompactions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rdfstore_memstore_log_compactions",
		Help: "Number of times the statement log was compacted.",
	})
)
