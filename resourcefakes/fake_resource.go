// Code in the shape counterfeiter generates. counterfeiter cannot generate
// fakes for generic interfaces, so this one is maintained by hand.
package resourcefakes

import (
	"sync"

	"code.cloudfoundry.org/lager"
	resource "github.com/concourse/go-resource"
)

type FakeResource[Source, Version, InParams, OutParams, InMetadata, OutMetadata any] struct {
	CheckStub        func(lager.Logger, *Source, *Version) []Version
	checkMutex       sync.RWMutex
	checkArgsForCall []struct {
		arg1 lager.Logger
		arg2 *Source
		arg3 *Version
	}
	checkReturns struct {
		result1 []Version
	}
	checkReturnsOnCall map[int]struct {
		result1 []Version
	}
	InStub        func(lager.Logger, *Source, Version, *InParams, string) (resource.InResult[Version, InMetadata], error)
	inMutex       sync.RWMutex
	inArgsForCall []struct {
		arg1 lager.Logger
		arg2 *Source
		arg3 Version
		arg4 *InParams
		arg5 string
	}
	inReturns struct {
		result1 resource.InResult[Version, InMetadata]
		result2 error
	}
	inReturnsOnCall map[int]struct {
		result1 resource.InResult[Version, InMetadata]
		result2 error
	}
	OutStub        func(lager.Logger, *Source, *OutParams, string) resource.OutResult[Version, OutMetadata]
	outMutex       sync.RWMutex
	outArgsForCall []struct {
		arg1 lager.Logger
		arg2 *Source
		arg3 *OutParams
		arg4 string
	}
	outReturns struct {
		result1 resource.OutResult[Version, OutMetadata]
	}
	outReturnsOnCall map[int]struct {
		result1 resource.OutResult[Version, OutMetadata]
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeResource[S, V, Pi, Po, Mi, Mo]) Check(arg1 lager.Logger, arg2 *S, arg3 *V) []V {
	fake.checkMutex.Lock()
	ret, specificReturn := fake.checkReturnsOnCall[len(fake.checkArgsForCall)]
	fake.checkArgsForCall = append(fake.checkArgsForCall, struct {
		arg1 lager.Logger
		arg2 *S
		arg3 *V
	}{arg1, arg2, arg3})
	fake.recordInvocation("Check", []interface{}{arg1, arg2, arg3})
	fake.checkMutex.Unlock()
	if fake.CheckStub != nil {
		return fake.CheckStub(arg1, arg2, arg3)
	}
	if specificReturn {
		return ret.result1
	}
	fakeReturns := fake.checkReturns
	return fakeReturns.result1
}

func (fake *FakeResource[S, V, Pi, Po, Mi, Mo]) CheckCallCount() int {
	fake.checkMutex.RLock()
	defer fake.checkMutex.RUnlock()
	return len(fake.checkArgsForCall)
}

func (fake *FakeResource[S, V, Pi, Po, Mi, Mo]) CheckArgsForCall(i int) (lager.Logger, *S, *V) {
	fake.checkMutex.RLock()
	defer fake.checkMutex.RUnlock()
	argsForCall := fake.checkArgsForCall[i]
	return argsForCall.arg1, argsForCall.arg2, argsForCall.arg3
}

func (fake *FakeResource[S, V, Pi, Po, Mi, Mo]) CheckReturns(result1 []V) {
	fake.checkMutex.Lock()
	defer fake.checkMutex.Unlock()
	fake.CheckStub = nil
	fake.checkReturns = struct {
		result1 []V
	}{result1}
}

func (fake *FakeResource[S, V, Pi, Po, Mi, Mo]) CheckReturnsOnCall(i int, result1 []V) {
	fake.checkMutex.Lock()
	defer fake.checkMutex.Unlock()
	fake.CheckStub = nil
	if fake.checkReturnsOnCall == nil {
		fake.checkReturnsOnCall = make(map[int]struct {
			result1 []V
		})
	}
	fake.checkReturnsOnCall[i] = struct {
		result1 []V
	}{result1}
}

func (fake *FakeResource[S, V, Pi, Po, Mi, Mo]) In(arg1 lager.Logger, arg2 *S, arg3 V, arg4 *Pi, arg5 string) (resource.InResult[V, Mi], error) {
	fake.inMutex.Lock()
	ret, specificReturn := fake.inReturnsOnCall[len(fake.inArgsForCall)]
	fake.inArgsForCall = append(fake.inArgsForCall, struct {
		arg1 lager.Logger
		arg2 *S
		arg3 V
		arg4 *Pi
		arg5 string
	}{arg1, arg2, arg3, arg4, arg5})
	fake.recordInvocation("In", []interface{}{arg1, arg2, arg3, arg4, arg5})
	fake.inMutex.Unlock()
	if fake.InStub != nil {
		return fake.InStub(arg1, arg2, arg3, arg4, arg5)
	}
	if specificReturn {
		return ret.result1, ret.result2
	}
	fakeReturns := fake.inReturns
	return fakeReturns.result1, fakeReturns.result2
}

func (fake *FakeResource[S, V, Pi, Po, Mi, Mo]) InCallCount() int {
	fake.inMutex.RLock()
	defer fake.inMutex.RUnlock()
	return len(fake.inArgsForCall)
}

func (fake *FakeResource[S, V, Pi, Po, Mi, Mo]) InArgsForCall(i int) (lager.Logger, *S, V, *Pi, string) {
	fake.inMutex.RLock()
	defer fake.inMutex.RUnlock()
	argsForCall := fake.inArgsForCall[i]
	return argsForCall.arg1, argsForCall.arg2, argsForCall.arg3, argsForCall.arg4, argsForCall.arg5
}

func (fake *FakeResource[S, V, Pi, Po, Mi, Mo]) InReturns(result1 resource.InResult[V, Mi], result2 error) {
	fake.inMutex.Lock()
	defer fake.inMutex.Unlock()
	fake.InStub = nil
	fake.inReturns = struct {
		result1 resource.InResult[V, Mi]
		result2 error
	}{result1, result2}
}

func (fake *FakeResource[S, V, Pi, Po, Mi, Mo]) InReturnsOnCall(i int, result1 resource.InResult[V, Mi], result2 error) {
	fake.inMutex.Lock()
	defer fake.inMutex.Unlock()
	fake.InStub = nil
	if fake.inReturnsOnCall == nil {
		fake.inReturnsOnCall = make(map[int]struct {
			result1 resource.InResult[V, Mi]
			result2 error
		})
	}
	fake.inReturnsOnCall[i] = struct {
		result1 resource.InResult[V, Mi]
		result2 error
	}{result1, result2}
}

func (fake *FakeResource[S, V, Pi, Po, Mi, Mo]) Out(arg1 lager.Logger, arg2 *S, arg3 *Po, arg4 string) resource.OutResult[V, Mo] {
	fake.outMutex.Lock()
	ret, specificReturn := fake.outReturnsOnCall[len(fake.outArgsForCall)]
	fake.outArgsForCall = append(fake.outArgsForCall, struct {
		arg1 lager.Logger
		arg2 *S
		arg3 *Po
		arg4 string
	}{arg1, arg2, arg3, arg4})
	fake.recordInvocation("Out", []interface{}{arg1, arg2, arg3, arg4})
	fake.outMutex.Unlock()
	if fake.OutStub != nil {
		return fake.OutStub(arg1, arg2, arg3, arg4)
	}
	if specificReturn {
		return ret.result1
	}
	fakeReturns := fake.outReturns
	return fakeReturns.result1
}

func (fake *FakeResource[S, V, Pi, Po, Mi, Mo]) OutCallCount() int {
	fake.outMutex.RLock()
	defer fake.outMutex.RUnlock()
	return len(fake.outArgsForCall)
}

func (fake *FakeResource[S, V, Pi, Po, Mi, Mo]) OutArgsForCall(i int) (lager.Logger, *S, *Po, string) {
	fake.outMutex.RLock()
	defer fake.outMutex.RUnlock()
	argsForCall := fake.outArgsForCall[i]
	return argsForCall.arg1, argsForCall.arg2, argsForCall.arg3, argsForCall.arg4
}

func (fake *FakeResource[S, V, Pi, Po, Mi, Mo]) OutReturns(result1 resource.OutResult[V, Mo]) {
	fake.outMutex.Lock()
	defer fake.outMutex.Unlock()
	fake.OutStub = nil
	fake.outReturns = struct {
		result1 resource.OutResult[V, Mo]
	}{result1}
}

func (fake *FakeResource[S, V, Pi, Po, Mi, Mo]) OutReturnsOnCall(i int, result1 resource.OutResult[V, Mo]) {
	fake.outMutex.Lock()
	defer fake.outMutex.Unlock()
	fake.OutStub = nil
	if fake.outReturnsOnCall == nil {
		fake.outReturnsOnCall = make(map[int]struct {
			result1 resource.OutResult[V, Mo]
		})
	}
	fake.outReturnsOnCall[i] = struct {
		result1 resource.OutResult[V, Mo]
	}{result1}
}

func (fake *FakeResource[S, V, Pi, Po, Mi, Mo]) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	fake.checkMutex.RLock()
	defer fake.checkMutex.RUnlock()
	fake.inMutex.RLock()
	defer fake.inMutex.RUnlock()
	fake.outMutex.RLock()
	defer fake.outMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeResource[S, V, Pi, Po, Mi, Mo]) recordInvocation(key string, args []interface{}) {
	fake.invocationsMutex.Lock()
	defer fake.invocationsMutex.Unlock()
	if fake.invocations == nil {
		fake.invocations = map[string][][]interface{}{}
	}
	if fake.invocations[key] == nil {
		fake.invocations[key] = [][]interface{}{}
	}
	fake.invocations[key] = append(fake.invocations[key], args)
}

var _ resource.Resource[struct{}, struct{}, struct{}, struct{}, struct{}, struct{}] = new(FakeResource[struct{}, struct{}, struct{}, struct{}, struct{}, struct{}])
