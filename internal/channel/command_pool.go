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

package channel

import "sync"

// CommandPool runs search-mode commands on a fixed set of workers so slow
// queries do not monopolize connection goroutines.
type CommandPool struct {
	jobs chan func()
	wg   sync.WaitGroup

	closeOnce sync.Once
}

// NewCommandPool starts size workers.
func NewCommandPool(size int) *CommandPool {
	if size <= 0 {
		size = 1
	}

	pool := &CommandPool{
		jobs: make(chan func(), size*4),
	}

	pool.wg.Add(size)

	for i := 0; i < size; i++ {
		go func() {
			defer pool.wg.Done()

			for job := range pool.jobs {
				job()
			}
		}()
	}

	return pool
}

// Enqueue schedules a job, blocking when every worker is busy and the
// backlog is full.
func (p *CommandPool) Enqueue(job func()) {
	defer func() {
		// A send on the closed channel during shutdown drops the job; the
		// connection is going away with it.
		_ = recover()
	}()

	p.jobs <- job
}

// Stop drains the backlog and joins the workers. Safe to call twice.
func (p *CommandPool) Stop() {
	p.closeOnce.Do(func() {
		close(p.jobs)
	})

	p.wg.Wait()
}
