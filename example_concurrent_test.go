// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// This file contains examples with concurrent producer/consumer goroutines.

package handoff_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/handoff"
	"code.hybscloud.com/iox"
)

// Example_eventAggregation demonstrates the fan-in pattern: several event
// sources enqueue concurrently, one aggregator drains.
func Example_eventAggregation() {
	type event struct {
		Source int
		Value  int
	}

	q := handoff.NewMPSC[event]()

	const sources = 4
	const perSource = 100

	var prodWg sync.WaitGroup
	for s := range sources {
		prodWg.Add(1)
		go func(src int) {
			defer prodWg.Done()
			for i := range perSource {
				ev := event{Source: src, Value: i}
				if err := q.Enqueue(&ev); err != nil {
					return
				}
			}
		}(s)
	}

	// Single aggregator: drain while sources run, then a final pass after
	// they quiesce.
	total := 0
	perSrc := [sources]int{}
	backoff := iox.Backoff{}
	for total < sources*perSource {
		ev, err := q.Dequeue()
		if err != nil {
			backoff.Wait()
			continue
		}
		backoff.Reset()
		perSrc[ev.Source]++
		total++
	}

	prodWg.Wait()
	q.Close()

	fmt.Println("total events:", total)
	for s := range sources {
		fmt.Printf("source %d: %d\n", s, perSrc[s])
	}

	// Output:
	// total events: 400
	// source 0: 100
	// source 1: 100
	// source 2: 100
	// source 3: 100
}

// Example_stoppableConsumer demonstrates a shutdown-aware consumer loop:
// poll until told to stop, then drain the remainder and release the queue.
func Example_stoppableConsumer() {
	q := handoff.NewMPSC[int]()

	var stop atomix.Bool
	var consumed atomix.Int64

	var consumerWg sync.WaitGroup
	consumerWg.Add(1)
	go func() {
		defer consumerWg.Done()
		backoff := iox.Backoff{}
		for !stop.Load() {
			if _, err := q.Dequeue(); err != nil {
				backoff.Wait()
				continue
			}
			backoff.Reset()
			consumed.Add(1)
		}
		// Producers have quiesced; drain what is left.
		for {
			if _, err := q.Dequeue(); err != nil {
				break
			}
			consumed.Add(1)
		}
		q.Close()
	}()

	// One producer burst, then an orderly stop.
	for i := range 1000 {
		if err := q.Enqueue(&i); err != nil {
			return
		}
	}
	stop.Store(true)
	consumerWg.Wait()

	fmt.Println("consumed:", consumed.Load())

	// Output:
	// consumed: 1000
}
