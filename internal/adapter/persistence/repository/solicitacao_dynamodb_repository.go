package repository

import (
	"context"
	"errors"
	"time"

	"avaliadores_api/internal/domain/entities"
	"avaliadores_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSolicitacoesTableName = "solicitacoes"
	solicitacoesUUIDIndex        = "uuid-index"
	solicitacoesListIndex        = "data_solicitacao-index"

	// Constant partition key of the list GSI. Every item carries it so the
	// listing query can return all solicitações ordered by submission time.
	solicitacaoEntity = "solicitacao"
)

type solicitacaoItem struct {
	ID                      string `dynamodbav:"id"`
	Entity                  string `dynamodbav:"entity"`
	UUID                    string `dynamodbav:"uuid"`
	TipoDocumento           string `dynamodbav:"tipo_documento"`
	NomeArquivo             string `dynamodbav:"nome_arquivo"`
	CaminhoArquivo          string `dynamodbav:"caminho_arquivo"`
	Status                  string `dynamodbav:"status"`
	DataSolicitacao         string `dynamodbav:"data_solicitacao"`
	DataInicioProcessamento string `dynamodbav:"data_inicio_processamento,omitempty"`
	DataConclusao           string `dynamodbav:"data_conclusao,omitempty"`
	TaskID                  string `dynamodbav:"task_id,omitempty"`
	Erro                    string `dynamodbav:"erro,omitempty"`
}

// SolicitacaoDynamoRepository persists Solicitacao entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: uuid-index (PK: uuid)
//   - GSI: data_solicitacao-index (PK: entity, SK: data_solicitacao)
//
// Status changes go through Transition, implemented as a conditional update on
// the current status. DynamoDB evaluates the condition atomically, which is
// what guarantees at most one pendente→em_processamento claim per solicitação.

type SolicitacaoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISolicitacaoRepository = (*SolicitacaoDynamoRepository)(nil)

func NewSolicitacaoDynamoRepository(ddb *dynamodb.Client) *SolicitacaoDynamoRepository {
	return &SolicitacaoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SOLICITACOES_TABLE", defaultSolicitacoesTableName),
	}
}

func (r *SolicitacaoDynamoRepository) Create(ctx context.Context, s entities.Solicitacao) (entities.Solicitacao, error) {
	it := toSolicitacaoItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Solicitacao{}, err
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
		return entities.Solicitacao{}, err
	}
	return s, nil
}

func (r *SolicitacaoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Solicitacao, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Solicitacao{}, err
	}
	if len(out.Item) == 0 {
		return entities.Solicitacao{}, nil
	}

	var it solicitacaoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Solicitacao{}, err
	}
	return fromSolicitacaoItem(it), nil
}

func (r *SolicitacaoDynamoRepository) GetByUUID(ctx context.Context, uuid string) (entities.Solicitacao, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(solicitacoesUUIDIndex),
		KeyConditionExpression: aws.String("#uuid = :uuid"),
		ExpressionAttributeNames: map[string]string{
			"#uuid": "uuid",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uuid": &types.AttributeValueMemberS{Value: uuid},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Solicitacao{}, err
	}
	if len(out.Items) == 0 {
		return entities.Solicitacao{}, nil
	}

	var it solicitacaoItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Solicitacao{}, err
	}
	return fromSolicitacaoItem(it), nil
}

// List returns solicitações in stable insertion order. DynamoDB scans are
// unordered, so we query the list GSI sorted by data_solicitacao and apply
// offset/limit client-side.
func (r *SolicitacaoDynamoRepository) List(ctx context.Context, offset, limit int) ([]entities.Solicitacao, error) {
	if limit <= 0 {
		return []entities.Solicitacao{}, nil
	}

	items := make([]entities.Solicitacao, 0, limit)
	remaining := offset + limit
	var startKey map[string]types.AttributeValue

	for remaining > 0 {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(solicitacoesListIndex),
			KeyConditionExpression: aws.String("#entity = :entity"),
			ExpressionAttributeNames: map[string]string{
				"#entity": "entity",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":entity": &types.AttributeValueMemberS{Value: solicitacaoEntity},
			},
			ScanIndexForward:  aws.Bool(true),
			Limit:             aws.Int32(int32(remaining)),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it solicitacaoItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			if offset > 0 {
				offset--
				continue
			}
			items = append(items, fromSolicitacaoItem(it))
		}

		remaining = offset + limit - len(items)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return items, nil
}

func (r *SolicitacaoDynamoRepository) Transition(ctx context.Context, id string, to entities.StatusSolicitacao, fields entities.TransitionFields) (entities.Solicitacao, error) {
	from, ok := entities.TransitionSource(to)
	if !ok {
		return entities.Solicitacao{}, interfaces.ErrInvalidTransition
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	expr := "SET #status = :to"
	names := map[string]string{
		"#id":     "id",
		"#status": "status",
	}
	vals := map[string]types.AttributeValue{
		":to":   &types.AttributeValueMemberS{Value: string(to)},
		":from": &types.AttributeValueMemberS{Value: string(from)},
	}

	switch to {
	case entities.StatusEmProcessamento:
		expr += ", #data_inicio_processamento = :now, #task_id = :task_id"
		names["#data_inicio_processamento"] = "data_inicio_processamento"
		names["#task_id"] = "task_id"
		vals[":now"] = &types.AttributeValueMemberS{Value: now}
		vals[":task_id"] = &types.AttributeValueMemberS{Value: fields.TaskID}
	case entities.StatusConcluido:
		expr += ", #data_conclusao = :now"
		names["#data_conclusao"] = "data_conclusao"
		vals[":now"] = &types.AttributeValueMemberS{Value: now}
	case entities.StatusErro:
		expr += ", #data_conclusao = :now, #erro = :erro"
		names["#data_conclusao"] = "data_conclusao"
		names["#erro"] = "erro"
		vals[":now"] = &types.AttributeValueMemberS{Value: now}
		vals[":erro"] = &types.AttributeValueMemberS{Value: fields.Erro}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: vals,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Distinguish a missing row from a status race.
			current, gerr := r.GetByID(ctx, id)
			if gerr != nil {
				return entities.Solicitacao{}, gerr
			}
			if current.ID == "" {
				return entities.Solicitacao{}, nil
			}
			return entities.Solicitacao{}, interfaces.ErrInvalidTransition
		}
		return entities.Solicitacao{}, err
	}

	var it solicitacaoItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Solicitacao{}, err
	}
	return fromSolicitacaoItem(it), nil
}

func toSolicitacaoItem(s entities.Solicitacao) solicitacaoItem {
	return solicitacaoItem{
		ID:                      s.ID,
		Entity:                  solicitacaoEntity,
		UUID:                    s.UUID,
		TipoDocumento:           string(s.TipoDocumento),
		NomeArquivo:             s.NomeArquivo,
		CaminhoArquivo:          s.CaminhoArquivo,
		Status:                  string(s.Status),
		DataSolicitacao:         s.DataSolicitacao.UTC().Format(time.RFC3339Nano),
		DataInicioProcessamento: formatOptionalTime(s.DataInicioProcessamento),
		DataConclusao:           formatOptionalTime(s.DataConclusao),
		TaskID:                  s.TaskID,
		Erro:                    s.Erro,
	}
}

func fromSolicitacaoItem(it solicitacaoItem) entities.Solicitacao {
	dataSolicitacao, _ := time.Parse(time.RFC3339Nano, it.DataSolicitacao)
	return entities.Solicitacao{
		ID:                      it.ID,
		UUID:                    it.UUID,
		TipoDocumento:           entities.TipoDocumento(it.TipoDocumento),
		NomeArquivo:             it.NomeArquivo,
		CaminhoArquivo:          it.CaminhoArquivo,
		Status:                  entities.StatusSolicitacao(it.Status),
		DataSolicitacao:         dataSolicitacao,
		DataInicioProcessamento: parseOptionalTime(it.DataInicioProcessamento),
		DataConclusao:           parseOptionalTime(it.DataConclusao),
		TaskID:                  it.TaskID,
		Erro:                    it.Erro,
	}
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseOptionalTime(v string) *time.Time {
	if v == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return nil
	}
	return &t
}
