// Copyright 2026 The miprov Authors
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
//
// SPDX-License-Identifier: Apache-2.0

package apischeme

import (
	"fmt"
	"path/filepath"

	"github.com/nimslab/miprov/internal/consts"
	intmodel "github.com/nimslab/miprov/internal/modelhub"
	ext "github.com/nimslab/miprov/pkg/api/model/v1beta1"
)

// Supported versions.
const (
	VersionV1Beta1 = ext.APIVersionV1Beta1
)

// ConvertHostDocToInternal converts an external HostDoc to the internal hub type.
func ConvertHostDocToInternal(in ext.HostDoc) (intmodel.Host, error) {
	switch in.APIVersion {
	case VersionV1Beta1, "": // default/empty treated as v1beta1
		services := make([]intmodel.Service, 0, len(in.Spec.Services))
		for _, s := range in.Spec.Services {
			services = append(services, intmodel.Service{
				Name:     s.Name,
				Image:    s.Image,
				UnitPath: s.UnitPath,
				Port:     s.Port,
				DataDir:  s.DataDir,
			})
		}
		publish := make([]intmodel.PortMapping, 0, len(in.Spec.Publish))
		for _, p := range in.Spec.Publish {
			publish = append(publish, intmodel.PortMapping{Host: p.Host, Container: p.Container})
		}
		return intmodel.Host{
			Metadata: intmodel.HostMetadata{
				Name:   in.Metadata.Name,
				Labels: in.Metadata.Labels,
			},
			Spec: intmodel.HostSpec{
				AppName:  in.Spec.AppName,
				AppUser:  in.Spec.AppUser,
				Python:   in.Spec.Python,
				Network:  in.Spec.Network,
				Pod:      in.Spec.Pod,
				Services: services,
				Publish:  publish,
			},
			Status: intmodel.HostStatus{
				State: intmodel.HostState(in.Status.State),
			},
		}, nil
	default:
		return intmodel.Host{}, fmt.Errorf("unsupported apiVersion for Host: %s", in.APIVersion)
	}
}

// BuildHostExternalFromInternal emits an external HostDoc for a given version
// from an internal hub object.
func BuildHostExternalFromInternal(in intmodel.Host, apiVersion ext.Version) (ext.HostDoc, error) {
	switch apiVersion {
	case VersionV1Beta1, "": // default to v1beta1
		services := make([]ext.ServiceSpec, 0, len(in.Spec.Services))
		for _, s := range in.Spec.Services {
			services = append(services, ext.ServiceSpec{
				Name:     s.Name,
				Image:    s.Image,
				UnitPath: s.UnitPath,
				Port:     s.Port,
				DataDir:  s.DataDir,
			})
		}
		publish := make([]ext.PortMapping, 0, len(in.Spec.Publish))
		for _, p := range in.Spec.Publish {
			publish = append(publish, ext.PortMapping{Host: p.Host, Container: p.Container})
		}
		return ext.HostDoc{
			APIVersion: VersionV1Beta1,
			Kind:       ext.KindHost,
			Metadata: ext.HostMetadata{
				Name:   in.Metadata.Name,
				Labels: in.Metadata.Labels,
			},
			Spec: ext.HostSpec{
				AppName:  in.Spec.AppName,
				AppUser:  in.Spec.AppUser,
				Python:   in.Spec.Python,
				Network:  in.Spec.Network,
				Pod:      in.Spec.Pod,
				Services: services,
				Publish:  publish,
			},
			Status: ext.HostStatus{
				State: ext.HostState(in.Status.State),
			},
		}, nil
	default:
		return ext.HostDoc{}, fmt.Errorf("unsupported output apiVersion for Host: %s", apiVersion)
	}
}

// NormalizeHost takes an external HostDoc request and returns a defaulted
// internal object and the chosen apiVersion.
func NormalizeHost(req ext.HostDoc) (intmodel.Host, ext.Version, error) {
	version := req.APIVersion
	if version == "" {
		version = VersionV1Beta1
	}
	internal, err := ConvertHostDocToInternal(req)
	if err != nil {
		return intmodel.Host{}, "", err
	}
	applyHostDefaults(&internal)
	return internal, version, nil
}

// applyHostDefaults fills the derived names and the fixed port table.
func applyHostDefaults(h *intmodel.Host) {
	if h.Spec.AppName == "" {
		h.Spec.AppName = consts.DefaultAppName
	}
	if h.Spec.AppUser == "" {
		h.Spec.AppUser = consts.DefaultAppUser
	}
	if h.Spec.Python == "" {
		h.Spec.Python = consts.DefaultPython
	}
	if h.Spec.Network == "" {
		h.Spec.Network = h.Spec.AppName + consts.NetworkSuffix
	}
	if h.Spec.Pod == "" {
		h.Spec.Pod = h.Spec.AppName + consts.PodSuffix
	}

	if len(h.Spec.Services) == 0 {
		h.Spec.Services = DefaultServices()
	}
	for i := range h.Spec.Services {
		s := &h.Spec.Services[i]
		if s.UnitPath == "" && s.Name != "" {
			s.UnitPath = filepath.Join(consts.UnitDir, h.Spec.AppName+"-"+s.Name+".service")
		}
	}

	if len(h.Spec.Publish) == 0 {
		h.Spec.Publish = DefaultPublish()
	}
}

// DefaultServices is the service set provisioned when the manifest lists
// none: the development web app and the object-storage service.
func DefaultServices() []intmodel.Service {
	return []intmodel.Service{
		{
			Name:    consts.DevServiceName,
			Image:   consts.DefaultDevImage,
			Port:    consts.PortDevWebApp,
			DataDir: consts.DefaultDataDir,
		},
		{
			Name:    consts.SwiftServiceName,
			Image:   consts.DefaultSwiftImage,
			Port:    consts.PortObjectStorage,
			DataDir: consts.DefaultSwiftDataDir,
		},
	}
}

// DefaultPublish is the fixed host-port to container-port table of the
// shared pod.
func DefaultPublish() []intmodel.PortMapping {
	publish := []intmodel.PortMapping{
		{Host: consts.PortComputeDispatch, Container: consts.PortComputeDispatch},
		{Host: consts.PortJobManager, Container: consts.PortJobManager},
		{Host: consts.PortDatabase, Container: consts.PortDatabase},
		{Host: consts.PortObjectStorage, Container: consts.PortObjectStorage},
		{Host: consts.PortDevWebApp, Container: consts.PortDevWebApp},
		{Host: consts.PortPackageStore, Container: consts.PortPackageStore},
		{Host: consts.PortUI, Container: consts.PortUI},
	}
	for p := consts.PortSessionFirst; p <= consts.PortSessionLast; p++ {
		publish = append(publish, intmodel.PortMapping{Host: p, Container: p})
	}
	return publish
}
