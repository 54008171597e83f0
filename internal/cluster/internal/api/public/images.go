package public

// ImageBuildRequest is the body of POST /v3/images/custom.
type ImageBuildRequest struct {
	ImageId string `json:"imageId"`
	// ImageConfiguration is the base64-encoded YAML configuration document.
	ImageConfiguration string `json:"imageConfiguration"`
}

// ImageInfoSummary is the short form of a custom image returned by list and
// by the asynchronous mutation endpoints.
type ImageInfoSummary struct {
	ImageId                   string `json:"imageId"`
	Region                    string `json:"region"`
	Version                   string `json:"version"`
	Ec2AmiId                  string `json:"ec2AmiId,omitempty"`
	ImageBuildStatus          string `json:"imageBuildStatus"`
	CloudformationStackArn    string `json:"cloudformationStackArn,omitempty"`
	CloudformationStackStatus string `json:"cloudformationStackStatus,omitempty"`
}

// BuildImageResponse is returned with 202 by POST /v3/images/custom.
type BuildImageResponse struct {
	Image              ImageInfoSummary    `json:"image"`
	ValidationMessages []ValidationMessage `json:"validationMessages,omitempty"`
}

// DeleteImageResponse is returned with 202 by DELETE /v3/images/custom/{imageId}.
type DeleteImageResponse struct {
	Image ImageInfoSummary `json:"image"`
}

// ListImagesResponse is the collection response of GET /v3/images/custom.
type ListImagesResponse struct {
	Images    []ImageInfoSummary `json:"images"`
	NextToken string             `json:"nextToken,omitempty"`
}

// ImageConfigurationStructure points at the stored configuration document.
type ImageConfigurationStructure struct {
	Url string `json:"url,omitempty"`
}

// DescribeImageResponse is the detailed form returned by
// GET /v3/images/custom/{imageId}.
type DescribeImageResponse struct {
	ImageId                   string                      `json:"imageId"`
	Region                    string                      `json:"region"`
	Version                   string                      `json:"version"`
	ImageBuildStatus          string                      `json:"imageBuildStatus"`
	Ec2AmiId                  string                      `json:"ec2AmiId,omitempty"`
	CloudformationStackArn    string                      `json:"cloudformationStackArn,omitempty"`
	CloudformationStackStatus string                      `json:"cloudformationStackStatus,omitempty"`
	CreationTime              string                      `json:"creationTime,omitempty"`
	ImageConfiguration        ImageConfigurationStructure `json:"imageConfiguration"`
	FailureReason             string                      `json:"failureReason,omitempty"`
}

// AmiInfo is one official image returned by GET /v3/images/official.
type AmiInfo struct {
	AmiId        string `json:"amiId"`
	Name         string `json:"name,omitempty"`
	Os           string `json:"os,omitempty"`
	Architecture string `json:"architecture,omitempty"`
	Version      string `json:"version,omitempty"`
}

// ListOfficialImagesResponse is the collection response of
// GET /v3/images/official.
type ListOfficialImagesResponse struct {
	Images []AmiInfo `json:"images"`
}
