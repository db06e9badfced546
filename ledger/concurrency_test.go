// Copyright 2026 Blink Labs Software
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

package ledger_test

import (
	"sync"
	"testing"

	test_ledger "github.com/blinklabs-io/catbuffer/internal/test/ledger"
	"github.com/blinklabs-io/catbuffer/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestConcurrentDecode(t *testing.T) {
	defer goleak.VerifyNone(t)
	tx := test_ledger.SampleAggregate(len(test_ledger.SampleBodies()))
	data, err := tx.Serialize()
	require.NoError(t, err)
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				decoded, err := ledger.NewTransactionFromBinary(data)
				if err != nil {
					errs <- err
					return
				}
				reencoded, err := decoded.Serialize()
				if err != nil {
					errs <- err
					return
				}
				if string(reencoded) != string(data) {
					errs <- assert.AnError
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}
