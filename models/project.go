package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionProjects = "projects"
)

// Project is the read-only minting configuration of one lending project.
type Project struct {
	Id                     *primitive.ObjectID `yaml:"-" bson:"_id,omitempty" json:"-"`
	ProjectId              string              `yaml:"project_id" bson:"project_id" json:"projectId"`
	CollectionName         string              `yaml:"collection_name" bson:"collection_name" json:"collectionName"`
	PolicyId               string              `yaml:"policy_id" bson:"policy_id" json:"policyId"`
	ParamUtxoRef           string              `yaml:"param_utxo_ref" bson:"param_utxo_ref" json:"paramUtxoRef"`
	OraclePolicyId         string              `yaml:"oracle_policy_id" bson:"oracle_policy_id" json:"oraclePolicyId"`
	OracleScriptRef        string              `yaml:"oracle_script_ref" bson:"oracle_script_ref" json:"oracleScriptRef"`
	MintingPolicyScriptRef string              `yaml:"minting_policy_script_ref" bson:"minting_policy_script_ref" json:"mintingPolicyScriptRef"`
	CreatedAt              time.Time           `yaml:"-" bson:"created_at" json:"createdAt"`
}
