// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

// Observable is implemented by pipeline components that accept an observer
type Observable interface {
	SetObserver(observer *StandardObserver)
}

// Attach sets observer on every component that is Observable
func Attach(observer *StandardObserver, components ...interface{}) {
	for _, component := range components {
		if o, ok := component.(Observable); ok {
			o.SetObserver(observer)
		}
	}
}
