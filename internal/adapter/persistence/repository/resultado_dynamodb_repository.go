package repository

import (
	"context"
	"time"

	"avaliadores_api/internal/domain/entities"
	"avaliadores_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultResultadosTableName = "resultados_analise"

type resultadoItem struct {
	ID               string `dynamodbav:"id"`
	SolicitacaoID    string `dynamodbav:"solicitacao_id"`
	CaminhoResultado string `dynamodbav:"caminho_resultado"`
	DataCriacao      string `dynamodbav:"data_criacao"`
}

// ResultadoDynamoRepository persists ResultadoAnalise entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The resultado id equals the solicitação id, so lookups by solicitação
// resolve by primary key and the conditional create rejects a second resultado
// for the same solicitação.

type ResultadoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IResultadoRepository = (*ResultadoDynamoRepository)(nil)

func NewResultadoDynamoRepository(ddb *dynamodb.Client) *ResultadoDynamoRepository {
	return &ResultadoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RESULTADOS_TABLE", defaultResultadosTableName),
	}
}

func (r *ResultadoDynamoRepository) Create(ctx context.Context, res entities.ResultadoAnalise) (entities.ResultadoAnalise, error) {
	it := resultadoItem{
		ID:               res.ID,
		SolicitacaoID:    res.SolicitacaoID,
		CaminhoResultado: res.CaminhoResultado,
		DataCriacao:      res.DataCriacao.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ResultadoAnalise{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ResultadoAnalise{}, err
	}
	return res, nil
}

func (r *ResultadoDynamoRepository) GetBySolicitacaoID(ctx context.Context, solicitacaoID string) (entities.ResultadoAnalise, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: solicitacaoID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ResultadoAnalise{}, err
	}
	if len(out.Item) == 0 {
		return entities.ResultadoAnalise{}, nil
	}

	var it resultadoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ResultadoAnalise{}, err
	}
	dataCriacao, _ := time.Parse(time.RFC3339Nano, it.DataCriacao)
	return entities.ResultadoAnalise{
		ID:               it.ID,
		SolicitacaoID:    it.SolicitacaoID,
		CaminhoResultado: it.CaminhoResultado,
		DataCriacao:      dataCriacao,
	}, nil
}
