package gcp

import (
	"context"
	"fmt"

	cloudresourcemanager "google.golang.org/api/cloudresourcemanager/v3"
)

// ListProjects returns the projects the authenticated user can access,
// using Application Default Credentials. The Resource Manager service is
// built per call; it is only needed while the project selector is open.
func ListProjects(ctx context.Context) ([]ProjectInfo, error) {
	svc, err := cloudresourcemanager.NewService(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource manager client: %w", err)
	}

	var projects []ProjectInfo
	// An empty query returns every project the caller can see.
	err = svc.Projects.Search().Pages(ctx, func(resp *cloudresourcemanager.SearchProjectsResponse) error {
		for _, p := range resp.Projects {
			projects = append(projects, ProjectInfo{
				ProjectID:   p.ProjectId,
				DisplayName: projectDisplayName(p.DisplayName, p.ProjectId),
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return projects, nil
}

// projectDisplayName falls back to the project id when the display name is
// not set.
func projectDisplayName(displayName, projectID string) string {
	if displayName == "" {
		return projectID
	}
	return displayName
}
