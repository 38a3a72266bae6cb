package models

// Index types accepted by CreateIndex.
const (
	IndexTypeKey      = "key"
	IndexTypeFulltext = "fulltext"
	IndexTypeUnique   = "unique"
)

// Index orders.
const (
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// Relationship types.
const (
	RelationOneToOne   = "oneToOne"
	RelationManyToOne  = "manyToOne"
	RelationManyToMany = "manyToMany"
	RelationOneToMany  = "oneToMany"
)

// What happens to related records when a record is deleted.
const (
	RelationMutateCascade  = "cascade"
	RelationMutateRestrict = "restrict"
	RelationMutateSetNull  = "setNull"
)

// Site deployment sources accepted by CreateTemplateDeployment and
// CreateVCSDeployment.
const (
	DeploymentTypeBranch = "branch"
	DeploymentTypeCommit = "commit"
	DeploymentTypeTag    = "tag"
)

// Deployment download types.
const (
	DeploymentDownloadSource = "source"
	DeploymentDownloadOutput = "output"
)

// Site adapters.
const (
	AdapterStatic = "static"
	AdapterSSR    = "ssr"
)
