package controllers

// SetGitHubDotEnvDir points the .env lookup of a GitHubController at dir.
func SetGitHubDotEnvDir(controller *GitHubController, dir string) {
	controller.dotEnvDir = dir
}

// SetGitLabDotEnvDir points the .env lookup of a GitLabController at dir.
func SetGitLabDotEnvDir(controller *GitLabController, dir string) {
	controller.dotEnvDir = dir
}
